package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	godotenv "github.com/joho/godotenv"
	goclient "github.com/mutablelogic/go-client"
	scribe "github.com/mutablelogic/go-scribe"
	client "github.com/mutablelogic/go-scribe/pkg/client"
	params "github.com/mutablelogic/go-scribe/pkg/params"
	source "github.com/mutablelogic/go-scribe/pkg/source"
	task "github.com/mutablelogic/go-scribe/pkg/task"
	zerolog "github.com/rs/zerolog"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Debug    bool          `name:"debug" help:"Enable debug output"`
	Trace    bool          `name:"trace" help:"Trace requests to the provider or server"`
	APIKey   string        `name:"api-key" env:"ASSEMBLYAI_API_KEY" help:"AssemblyAI API key"`
	Provider string        `name:"provider" env:"ASSEMBLYAI_ENDPOINT" help:"AssemblyAI endpoint" default:"${ASSEMBLYAI_ENDPOINT}"`
	Url      string        `name:"url" env:"SCRIBE_URL" help:"URL of scribe service, for remote commands" default:"${SCRIBE_URL}"`
	Dir      string        `name:"dir" env:"SCRIBE_UPLOAD_DIR" help:"Directory for staged uploads"`
	Poll     time.Duration `name:"poll" help:"Interval between transcript status checks" default:"3s"`
	Timeout  time.Duration `name:"timeout" help:"Timeout for requests" default:"5m"`

	// Writer, logger and context
	writer *tablewriter.Writer
	log    zerolog.Logger
	ctx    context.Context
}

type CLI struct {
	Globals

	Serve      ServeCmd      `cmd:"serve" help:"Run the scribe service"`
	Transcribe TranscribeCmd `cmd:"transcribe" help:"Transcribe an audio file or URL"`
	Summary    SummaryCmd    `cmd:"summary" help:"Run a LeMUR task or summary over a transcript"`
	Snippet    SnippetCmd    `cmd:"snippet" help:"Print the code for a transcription, without running it"`
	Models     ModelsCmd     `cmd:"models" help:"List summary models"`
	Version    VersionCmd    `cmd:"version" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultEndpoint = "http://localhost:8080/api"
	defaultProvider = "https://api.assemblyai.com/"
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Read environment from .env, if it exists
	envErr := godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("transcription and summary service, with code to reproduce each request"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"SCRIBE_URL":          envOrDefault("SCRIBE_URL", defaultEndpoint),
			"ASSEMBLYAI_ENDPOINT": envOrDefault("ASSEMBLYAI_ENDPOINT", defaultProvider),
			"MAX_UPLOAD":          fmt.Sprint(source.DefaultMaxSize),
			"MAX_CONCURRENT":      fmt.Sprint(task.DefaultMaxConcurrent),
			"LEMUR_MODEL":         params.DefaultLemurModel,
		},
	)

	// Create a logger
	level := zerolog.InfoLevel
	if cli.Globals.Debug {
		level = zerolog.DebugLevel
	}
	cli.Globals.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		cli.Globals.log.Warn().Err(envErr).Msg("unable to read .env")
	}

	// Create a tablewriter object with text output
	cli.Globals.writer = tablewriter.New(os.Stdout, tablewriter.OptOutputText())

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// service returns a scribe service which calls the provider directly
func (app *Globals) service(opts ...scribe.Opt) (*scribe.Scribe, error) {
	opts = append([]scribe.Opt{
		scribe.OptEndpoint(app.Provider),
		scribe.OptTimeout(app.Timeout),
		scribe.OptPollInterval(app.Poll),
		scribe.OptUploadDir(app.Dir),
		scribe.OptLogger(app.log),
	}, opts...)
	if app.Trace {
		opts = append(opts, scribe.OptTrace(os.Stderr, app.Debug))
	}
	return scribe.New(opts...)
}

// remote returns a client for a scribe service
func (app *Globals) remote() (*client.Client, error) {
	opts := []goclient.ClientOpt{
		goclient.OptTimeout(app.Timeout),
	}
	if app.Trace {
		opts = append(opts, goclient.OptTrace(os.Stderr, app.Debug))
	}
	return client.New(app.Url, opts...)
}

func envOrDefault(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	} else {
		return def
	}
}
