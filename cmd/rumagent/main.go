// Command rumagent drives a synthetic visitor through the monitoring agent
// and sends its page views to a real collector.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rumagent"
	"github.com/dmitrymomot/rumagent/pkg/config"
	"github.com/dmitrymomot/rumagent/pkg/cookie"
	"github.com/dmitrymomot/rumagent/pkg/logger"
	"github.com/dmitrymomot/rumagent/pkg/pageview"
	"github.com/dmitrymomot/rumagent/pkg/redis"
	"github.com/dmitrymomot/rumagent/pkg/siteid"
	"github.com/dmitrymomot/rumagent/pkg/storage"
)

type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Agent  rumagent.Config
	Redis  redis.Config
	Cookie cookie.Config
}

type visitorKey struct{}

func main() {
	var (
		envFile   = flag.String("env-file", "", "Path to a .env file (optional)")
		visitor   = flag.String("visitor", "", "Visitor id; reuse one to continue its session (default: random)")
		views     = flag.Int("views", 3, "Number of page views to send")
		interval  = flag.Duration("interval", time.Second, "Pause between page views")
		baseURL   = flag.String("url", "https://example.com", "Base URL of the visited pages")
		userAgent = flag.String("user-agent", "", "User agent of the synthetic browser")
		legacy    = flag.String("legacy-marker", "", "JSON of the legacy snippet marker, used when no site id is configured")
	)
	flag.Parse()

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}

	var cfg appConfig
	if err := config.Load(&cfg, config.WithEnvFiles(files...)); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *visitor == "" {
		*visitor = uuid.NewString()
	}

	l := logger.New(
		logger.WithEnvironment(cfg.Env, "rumagent"),
		logger.WithContextValue("visitor", visitorKey{}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = context.WithValue(ctx, visitorKey{}, *visitor)

	jar := cookie.NewFromConfig(cfg.Cookie, time.Now)

	opts := []rumagent.Option{
		rumagent.WithCookieJar(jar),
		rumagent.WithUserAgent(*userAgent),
		rumagent.WithLogger(l),
	}

	if *legacy != "" {
		opts = append(opts, rumagent.WithLegacyMarker(siteid.LegacyJSON(*legacy)))
	}

	if cfg.Redis.ConnectionURL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer client.Close()

		store := storage.NewRedisStore(client, "rumagent:"+*visitor, cfg.Redis.KeyTTL)
		opts = append(opts, rumagent.WithNativeStore(store))
	}

	agent, err := rumagent.New(cfg.Agent, opts...)
	if err != nil {
		log.Fatalf("Failed to create agent: %v", err)
	}

	if !agent.Start(ctx) {
		l.WarnContext(ctx, "agent did not start")
		return
	}

	if err := run(ctx, agent, *views, *interval, *baseURL); err != nil {
		l.ErrorContext(ctx, "page views interrupted", logger.Error(err))
	}

	info, err := agent.SessionInfo(ctx)
	if err != nil {
		log.Fatalf("Failed to read session: %v", err)
	}

	fmt.Printf("Visitor:     %s\n", *visitor)
	fmt.Printf("Storage:     %s\n", agent.StorageKind())
	fmt.Printf("Site ID:     %s\n", agent.SiteID(ctx))
	fmt.Printf("Session ID:  %s\n", info.ID)
	fmt.Printf("Next step:   %d\n", info.InteractionStep)
	fmt.Printf("Returning:   %t\n", info.ReturningVisitor)

	if agent.StorageKind() == storage.KindCookie {
		if value, err := jar.Get(cfg.Agent.StorageKey); err == nil {
			fmt.Printf("Cookie:      %s=%s\n", cfg.Agent.StorageKey, value)
		}
	}
}

func run(ctx context.Context, agent *rumagent.Agent, views int, interval time.Duration, baseURL string) error {
	baseURL = strings.TrimSuffix(baseURL, "/")
	referrer := ""

	for i := range views {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}

		page := pageview.Page{
			Title:    fmt.Sprintf("Page %d", i+1),
			URL:      fmt.Sprintf("%s/page-%d", baseURL, i+1),
			Referrer: referrer,
		}

		info, err := agent.TrackPageView(ctx, page.Fields())
		if err != nil {
			return err
		}

		agent.Logger().InfoContext(ctx, "page view tracked",
			logger.SessionID(info.ID),
			slog.Int("interaction_step", info.InteractionStep),
			logger.URL(page.URL),
		)
		referrer = page.URL
	}

	return nil
}
