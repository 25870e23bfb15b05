package delivery

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/buaazp/fasthttprouter"
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"disqus-client/models"
	"disqus-client/repository"
)

// Api answers API calls the way the remote endpoint does: a GET returns a
// script invoking the callback named in api_response_format, a POST takes
// form fields and returns a script nobody can read.
type Api struct {
	storage *repository.Storage
	logger  *zap.Logger
	methods map[string]method
}

type method func(args *fasthttp.Args) (easyjson.Marshaler, error)

func NewApi(storage *repository.Storage, logger *zap.Logger) *Api {
	if logger == nil {
		logger = zap.NewNop()
	}
	api := &Api{storage: storage, logger: logger}
	api.methods = map[string]method{
		"get_user_name":        api.getUserName,
		"get_forum_list":       api.getForumList,
		"get_forum_api_key":    api.getForumAPIKey,
		"get_forum_posts":      api.getForumPosts,
		"get_categories_list":  api.getCategoriesList,
		"get_thread_list":      api.getThreadList,
		"get_updated_threads":  api.getUpdatedThreads,
		"get_thread_by_url":    api.getThreadByURL,
		"get_thread_posts":     api.getThreadPosts,
		"get_num_posts":        api.getNumPosts,
		"moderate_post":        api.moderatePost,
		"thread_by_identifier": api.threadByIdentifier,
	}
	return api
}

func NewRouter(api *Api) *fasthttprouter.Router {
	router := fasthttprouter.New()

	router.GET("/api/:method/", api.Get)
	router.POST("/api/:method/", api.Post)

	return router
}

func (api *Api) Get(ctx *fasthttp.RequestCtx) {
	api.serve(ctx, ctx.QueryArgs())
}

func (api *Api) Post(ctx *fasthttp.RequestCtx) {
	api.serve(ctx, ctx.PostArgs())
}

var callbackPattern = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)

func callbackName(format string) (string, bool) {
	name := strings.TrimPrefix(format, "jsonp:")
	if name == format || !callbackPattern.MatchString(name) {
		return "", false
	}
	return name, true
}

func (api *Api) serve(ctx *fasthttp.RequestCtx, args *fasthttp.Args) {
	name := ctx.UserValue("method").(string)

	callback, ok := callbackName(string(args.Peek("api_response_format")))
	if !ok {
		ctx.Error("unsupported api_response_format", http.StatusBadRequest)
		return
	}

	var response models.Response
	result, err := api.invoke(name, args)
	if err == nil {
		response.Succeeded = true
		response.Message, err = easyjson.Marshal(result)
	}
	if err != nil {
		response.Succeeded = false
		response.Code = models.CodeOf(err)
		if response.Code == "" {
			response.Code = "internal-error"
		}
		response.Message, _ = easyjson.Marshal(models.Text(err.Error()))
	}

	body, _ := easyjson.Marshal(response)

	api.logger.Info("Served API call",
		zap.String("method", name),
		zap.String("http_method", string(ctx.Method())),
		zap.Bool("succeeded", response.Succeeded),
		zap.String("code", string(response.Code)))

	ctx.SetStatusCode(http.StatusOK)
	ctx.SetContentType("text/javascript; charset=utf-8")
	_, _ = ctx.WriteString(callback)
	_, _ = ctx.WriteString("(")
	_, _ = ctx.Write(body)
	_, _ = ctx.WriteString(");")
}

func (api *Api) invoke(name string, args *fasthttp.Args) (easyjson.Marshaler, error) {
	m, ok := api.methods[name]
	if !ok {
		return nil, models.UnknownMethod(name)
	}
	return m(args)
}

func (api *Api) checkUser(args *fasthttp.Args) error {
	return api.storage.CheckUserKey(string(args.Peek("user_api_key")))
}

func requiredID(args *fasthttp.Args, name string) (models.ID, error) {
	v, err := required(args, name)
	return models.ID(v), err
}

func required(args *fasthttp.Args, name string) (string, error) {
	v := string(args.Peek(name))
	if v == "" {
		return "", models.MissingArgument(name)
	}
	return v, nil
}

func postFilter(args *fasthttp.Args) repository.PostFilter {
	limit, _ := strconv.Atoi(string(args.Peek("limit")))
	start, _ := strconv.Atoi(string(args.Peek("start")))
	return repository.PostFilter{
		CategoryID: models.ID(args.Peek("category_id")),
		Limit:      limit,
		Start:      start,
		Filter:     list(args.Peek("filter")),
		Exclude:    list(args.Peek("exclude")),
	}
}

func list(v []byte) []string {
	if len(v) == 0 {
		return nil
	}
	return strings.Split(string(v), ",")
}

func (api *Api) getUserName(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	return models.Text(api.storage.UserName()), nil
}

func (api *Api) getForumList(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	return api.storage.Forums(), nil
}

func (api *Api) getForumAPIKey(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	forumID, err := requiredID(args, "forum_id")
	if err != nil {
		return nil, err
	}
	key, err := api.storage.ForumAPIKey(forumID)
	if err != nil {
		return nil, err
	}
	return models.Text(key), nil
}

func (api *Api) getForumPosts(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	forumID, err := requiredID(args, "forum_id")
	if err != nil {
		return nil, err
	}
	return api.storage.ForumPosts(forumID, postFilter(args))
}

func (api *Api) getCategoriesList(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	forumID, err := requiredID(args, "forum_id")
	if err != nil {
		return nil, err
	}
	return api.storage.Categories(forumID)
}

func (api *Api) getThreadList(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	forumID, err := requiredID(args, "forum_id")
	if err != nil {
		return nil, err
	}
	return api.storage.Threads(forumID, models.ID(args.Peek("category_id")))
}

func (api *Api) getUpdatedThreads(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	forumID, err := requiredID(args, "forum_id")
	if err != nil {
		return nil, err
	}
	raw, err := required(args, "since")
	if err != nil {
		return nil, err
	}
	since, err := models.ParseDate(raw)
	if err != nil {
		return nil, &models.Failure{Code: models.CodeMissingArgument, Message: err.Error()}
	}
	return api.storage.UpdatedThreads(forumID, since)
}

func (api *Api) getThreadByURL(args *fasthttp.Args) (easyjson.Marshaler, error) {
	forum, err := api.storage.ForumByAPIKey(string(args.Peek("forum_api_key")))
	if err != nil {
		return nil, err
	}
	url, err := required(args, "url")
	if err != nil {
		return nil, err
	}
	return api.storage.ThreadByURL(forum.ID, url)
}

func (api *Api) getThreadPosts(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	threadID, err := requiredID(args, "thread_id")
	if err != nil {
		return nil, err
	}
	return api.storage.ThreadPosts(threadID, postFilter(args))
}

func (api *Api) getNumPosts(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	raw, err := required(args, "thread_ids")
	if err != nil {
		return nil, err
	}
	var ids []models.ID
	for _, id := range list([]byte(raw)) {
		ids = append(ids, models.ID(id))
	}
	return api.storage.NumPosts(ids), nil
}

func (api *Api) moderatePost(args *fasthttp.Args) (easyjson.Marshaler, error) {
	if err := api.checkUser(args); err != nil {
		return nil, err
	}
	postID, err := requiredID(args, "post_id")
	if err != nil {
		return nil, err
	}
	if err := api.storage.ModeratePost(postID, string(args.Peek("action"))); err != nil {
		return nil, err
	}
	return ack(true), nil
}

func (api *Api) threadByIdentifier(args *fasthttp.Args) (easyjson.Marshaler, error) {
	forum, err := api.storage.ForumByAPIKey(string(args.Peek("forum_api_key")))
	if err != nil {
		return nil, err
	}
	thread, created, err := api.storage.ThreadByIdentifier(forum.ID, string(args.Peek("identifier")), string(args.Peek("title")))
	if err != nil {
		return nil, err
	}
	return threadCreated{Thread: thread, Created: created}, nil
}

type ack bool

func (v ack) MarshalEasyJSON(w *jwriter.Writer) { w.Bool(bool(v)) }

type threadCreated struct {
	Thread  models.Thread
	Created bool
}

func (v threadCreated) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"thread":`)
	v.Thread.MarshalEasyJSON(w)
	w.RawString(`,"created":`)
	w.Bool(v.Created)
	w.RawByte('}')
}
