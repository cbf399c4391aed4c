package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dungeondepths/tilegen"
	"github.com/dungeondepths/tilegen/palette"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultOutputDir = "assets/sprites/depths"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *zap.Logger {
	level := zapcore.InfoLevel
	if c.Bool("verbose") {
		level = zapcore.DebugLevel
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	})

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), level),
	}

	if file := c.String("log-file"); file != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), w, level))
	}

	return zap.New(zapcore.NewTee(cores...))
}

func newRegistry(c *cli.Context) (*palette.Registry, error) {
	reg := palette.Builtin()
	if file := c.String("palettes"); file != "" {
		if err := reg.LoadFile(file); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "tilegen"
	app.Usage = "procedural dungeon tileset generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			EnvVars: []string{"TILEGEN_OUT"},
			Value:   defaultOutputDir,
			Usage:   "output directory",
		},
		&cli.StringFlag{
			Name:    "palettes",
			EnvVars: []string{"TILEGEN_PALETTES"},
			Usage:   "YAML file with additional zone palettes",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "base seed added to the atlas seed schedule",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: 4,
			Usage: "concurrent zone workers",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "also log to this rotated file",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "generate",
			Usage:     "Generate tileset atlases",
			ArgsUsage: "[ZONE...]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "all",
					Aliases: []string{"a"},
					Usage:   "generate every registered zone",
				},
				&cli.BoolFlag{
					Name:  "indexed",
					Usage: "also write a paletted copy of each atlas",
				},
				&cli.BoolFlag{
					Name:  "keep-existing",
					Usage: "never overwrite, suffix new files instead",
				},
			},
			Action: func(c *cli.Context) error {
				logger := newLogger(c)
				defer logger.Sync()

				reg, err := newRegistry(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				g := tilegen.New(reg, logger, tilegen.Options{
					OutputDir:    c.String("out"),
					BaseSeed:     c.Int64("seed"),
					Workers:      c.Int("workers"),
					Indexed:      c.Bool("indexed"),
					KeepExisting: c.Bool("keep-existing"),
				})

				switch {
				case c.Bool("all"):
					err = g.GenerateAll(c.Context)
				case c.NArg() > 0:
					err = g.Generate(c.Context, c.Args().Slice()...)
				default:
					err = g.Generate(c.Context, palette.DefaultZone)
				}
				if err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "zones",
			Usage: "List registered zone palettes",
			Action: func(c *cli.Context) error {
				reg, err := newRegistry(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, name := range reg.Names() {
					fmt.Println(name)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
