package main

import (
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render built-in scenes using CPU path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Build the selected scene, construct its BVH and path trace every pixel using
one worker per CPU. The frame is written as a plain PPM (P3) image plus an
optional PNG preview to the output directory and, with --upload, to S3.

Unset flags fall back to PATHTRACER_* environment variables, then to the
scene's own defaults.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "built-in scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width; the height follows the scene aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum number of bounces per path",
				},
				cli.IntFlag{
					Name:  "threads",
					Usage: "number of render workers (0 = one per CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base random seed; worker n uses seed+n",
				},
				cli.IntFlag{
					Name:  "ao-samples",
					Usage: "ambient occlusion probe rays per diffuse hit (0 disables)",
				},
				cli.Float64Flag{
					Name:  "ao-distance",
					Usage: "maximum distance at which geometry occludes a probe ray",
				},
				cli.StringFlag{
					Name:  "bvh",
					Usage: "BVH split axis policy: random or longest",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output directory",
				},
				cli.IntFlag{
					Name:  "preview-width",
					Usage: "width of the PNG preview (0 disables)",
				},
				cli.BoolFlag{
					Name:  "upload",
					Usage: "upload the outputs to the configured S3 bucket",
				},
				cli.StringFlag{
					Name:  "env-file",
					Value: ".env",
					Usage: "optional file of PATHTRACER_* variables",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		cmd.Logger().Errorf("%v", err)
		os.Exit(1)
	}
}
