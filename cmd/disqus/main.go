package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"disqus-client/config"
	"disqus-client/dispatch"
	"disqus-client/models"
	"disqus-client/transport"
	"disqus-client/usecase"
)

const usage = `usage: disqus [flags] <command> [args]

commands:
  forums                        list the user's forums
  categories <forum_id>         list a forum's categories
  threads <forum_id>            list a forum's threads
  updated-threads <forum_id>    list threads updated after -since
  forum-posts <forum_id>        list a forum's latest posts
  posts <thread_id>             list a thread's posts
  thread-by-url <forum_id> <url>
  thread-by-identifier <forum_id> <identifier> <title>
                                create or look up a thread (write-only)
  num-posts <thread_id>...      count posts per thread
  moderate <post_id> <action>   spam, approve or kill a post
  user-name                     ask for the user name (write-only)

flags:
`

func main() {
	configPath := flag.String("config", "config.yaml", "config file")
	since := flag.String("since", "", "lower bound for updated-threads, as 2006-01-02T15:04 (UTC)")
	limit := flag.Int("limit", 0, "maximum number of posts to list")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := cfg.Log.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := false
	c := &cli{
		svc:    newService(ctx, cfg, logger),
		out:    os.Stdout,
		limit:  *limit,
		finish: func() { done = true },
	}
	c.fail = func(code dispatch.Code) {
		fmt.Fprintf(os.Stderr, "failed: %s\n", code)
		c.finish()
	}
	if *since != "" {
		if c.since, err = models.ParseDate(*since); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "-since"))
			os.Exit(2)
		}
	}

	if err := c.issue(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if err := c.svc.Dispatcher().Loop().RunUntil(ctx, func() bool { return done }); err != nil {
		logger.Warn("Interrupted before the call completed", zap.Error(err))
		os.Exit(1)
	}
}

func newService(ctx context.Context, cfg *config.Config, logger *zap.Logger) *usecase.Service {
	remote := transport.NewRemote(transport.Options{
		Name:            cfg.HTTP.Name,
		MaxConnsPerHost: cfg.HTTP.MaxConnsPerHost,
		ReadTimeout:     cfg.HTTP.ReadTimeout,
		WriteTimeout:    cfg.HTTP.WriteTimeout,
	}, logger)

	d := dispatch.New(ctx, dispatch.Config{
		BaseURL:     cfg.API.BaseURL,
		Version:     cfg.API.Version,
		Namespace:   cfg.API.Namespace,
		SettleDelay: cfg.Dispatch.SettleDelay,
	}, remote, remote, logger)

	sugar := logger.Sugar()
	return usecase.NewService(d, cfg.API.UserKeyURL).
		SetUserKey(cfg.API.UserKey).
		SetLogger(func(line string) { sugar.Debug(line) })
}

type cli struct {
	svc    *usecase.Service
	out    io.Writer
	since  time.Time
	limit  int
	finish func()
	fail   func(dispatch.Code)
}

func (c *cli) options() dispatch.Params {
	if c.limit <= 0 {
		return nil
	}
	return dispatch.Params{"limit": c.limit}
}

func (c *cli) forum(id string) *usecase.Forum {
	return c.svc.Forum(models.Forum{ID: models.ID(id)})
}

func (c *cli) submitted(dispatch.Void) {
	fmt.Fprintln(c.out, "submitted")
	c.finish()
}

func (c *cli) issue(command string, args []string) error {
	need := func(n int) error {
		if len(args) < n {
			return errors.Errorf("%s: expected %d argument(s)", command, n)
		}
		return nil
	}

	switch command {
	case "forums":
		c.svc.GetForumList(dispatch.Call[[]*usecase.Forum]{
			Success: func(forums []*usecase.Forum) {
				for _, f := range forums {
					fmt.Fprintf(c.out, "%s\t%s\t%s\n", f.ID, f.Shortname, f.Name)
				}
				c.finish()
			},
			Failure: c.fail,
		})
	case "categories":
		if err := need(1); err != nil {
			return err
		}
		c.forum(args[0]).GetCategoriesList(dispatch.Call[[]*models.Category]{
			Success: func(categories []*models.Category) {
				for _, cat := range categories {
					fmt.Fprintf(c.out, "%s\t%s\n", cat.ID, cat.Title)
				}
				c.finish()
			},
			Failure: c.fail,
		})
	case "threads":
		if err := need(1); err != nil {
			return err
		}
		c.forum(args[0]).GetThreadList(dispatch.Call[[]*usecase.Thread]{
			Success: c.printThreads,
			Failure: c.fail,
		})
	case "updated-threads":
		if err := need(1); err != nil {
			return err
		}
		if c.since.IsZero() {
			return errors.Errorf("%s: -since is required", command)
		}
		c.forum(args[0]).GetUpdatedThreads(c.since, dispatch.Call[[]*usecase.Thread]{
			Success: c.printThreads,
			Failure: c.fail,
		})
	case "forum-posts":
		if err := need(1); err != nil {
			return err
		}
		c.forum(args[0]).GetForumPosts(dispatch.Call[[]*usecase.Post]{
			Success: c.printPosts,
			Failure: c.fail,
			Options: c.options(),
		})
	case "posts":
		if err := need(1); err != nil {
			return err
		}
		c.svc.Thread(models.Thread{ID: models.ID(args[0])}).GetThreadPosts(dispatch.Call[[]*usecase.Post]{
			Success: c.printPosts,
			Failure: c.fail,
			Options: c.options(),
		})
	case "thread-by-url":
		if err := need(2); err != nil {
			return err
		}
		c.forum(args[0]).GetThreadByURL(args[1], dispatch.Call[*usecase.Thread]{
			Success: func(t *usecase.Thread) { c.printThreads([]*usecase.Thread{t}) },
			Failure: c.fail,
		})
	case "thread-by-identifier":
		if err := need(3); err != nil {
			return err
		}
		c.forum(args[0]).ThreadByIdentifier(args[1], args[2], dispatch.Call[dispatch.Void]{
			Success: c.submitted,
			Failure: c.fail,
		})
	case "num-posts":
		if err := need(1); err != nil {
			return err
		}
		c.svc.GetNumPosts(args, dispatch.Call[models.NumPosts]{
			Success: func(counts models.NumPosts) {
				for _, id := range args {
					if n, ok := counts[id]; ok {
						fmt.Fprintf(c.out, "%s\t%v\n", id, n)
					}
				}
				c.finish()
			},
			Failure: c.fail,
		})
	case "moderate":
		if err := need(2); err != nil {
			return err
		}
		c.svc.Post(models.Post{ID: models.ID(args[0])}).ModeratePost(args[1], dispatch.Call[dispatch.Void]{
			Success: c.submitted,
		})
	case "user-name":
		c.svc.GetUserName(dispatch.Call[dispatch.Void]{Success: c.submitted})
	default:
		return errors.Errorf("unknown command %q", command)
	}
	return nil
}

func (c *cli) printThreads(threads []*usecase.Thread) {
	for _, t := range threads {
		fmt.Fprintf(c.out, "%s\t%s\t%s\t%s\n", t.ID, created(t.CreatedAt), t.Title, t.URL)
	}
	c.finish()
}

func (c *cli) printPosts(posts []*usecase.Post) {
	for _, p := range posts {
		fmt.Fprintf(c.out, "%s\t%s\t%s\t%s\n", p.ID, created(p.CreatedAt), p.Status, p.Message)
	}
	c.finish()
}

// created prints a timestamp the API sent in an unknown format as received.
func created(d models.Date) string {
	if len(d.Raw) > 0 {
		return string(d.Raw)
	}
	return models.FormatDate(d.Time)
}
