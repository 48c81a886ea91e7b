package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/labelrepel/pkg/cache"
	"github.com/matzehuels/labelrepel/pkg/metrics"
	"github.com/matzehuels/labelrepel/pkg/observability"
	"github.com/matzehuels/labelrepel/pkg/pipeline"
	"github.com/matzehuels/labelrepel/pkg/server"
)

// Environment variables read by serve, also from a .env file in the
// working directory. Flags win over both.
const (
	envAddr  = "LABELREPEL_ADDR"
	envRedis = "LABELREPEL_REDIS"
)

const defaultAddr = ":8080"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	redis   string // redis address or URL; empty uses the file cache
	noCache bool   // disable caching entirely
}

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes POST /v1/repel and POST /v1/render over HTTP, with
/healthz and Prometheus metrics at /metrics.

Settings are read from flags, then LABELREPEL_ADDR and LABELREPEL_REDIS,
which may also be set in a .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err == nil {
				c.Logger.Debug("loaded .env")
			}
			opts.applyEnv(os.Getenv, cmd.Flags().Changed("addr"), cmd.Flags().Changed("redis"))
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address (env "+envAddr+")")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address or URL for the shared cache (env "+envRedis+")")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// applyEnv fills settings whose flag was not given from the environment.
func (o *serveOpts) applyEnv(getenv func(string) string, addrSet, redisSet bool) {
	if v := getenv(envAddr); v != "" && !addrSet {
		o.addr = v
	}
	if v := getenv(envRedis); v != "" && !redisSet {
		o.redis = v
	}
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	reg := metrics.DefaultRegistry()
	observability.SetRepelHooks(reg)
	observability.SetCacheHooks(reg)
	observability.SetHTTPHooks(reg)
	defer observability.Reset()

	runner, err := c.newServeRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := server.New(server.Config{
		Runner:  runner,
		Logger:  c.Logger,
		Metrics: reg.Handler(),
	})
	return srv.ListenAndServe(ctx, opts.addr)
}

// newServeRunner picks the cache backend for the server: Redis when
// configured, the on-disk cache otherwise.
func (c *CLI) newServeRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	if opts.noCache || opts.redis == "" {
		return c.newRunner(opts.noCache)
	}

	rc, err := cache.NewRedisCache(ctx, opts.redis)
	if err != nil {
		return nil, err
	}
	c.Logger.Info("using redis cache", "addr", opts.redis)
	return pipeline.NewRunner(cache.NewInstrumented(rc), serveKeyer(), c.Logger), nil
}

// serveKeyer scopes shared cache keys to this application.
func serveKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":")
}
