package cmd

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame of a built-in scene and write it to the configured sinks.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := config.Load(ctx.String("env-file"))
	if err != nil {
		return err
	}
	applyFlags(ctx, cfg)

	// Textures draw their noise tables from the seed so renders are repeatable
	sc, err := scene.Build(cfg.Scene, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return err
	}
	cfg.ApplySceneDefaults(sc.SamplingConfig.Width, sc.SamplingConfig.SamplesPerPixel, sc.SamplingConfig.MaxDepth, sc.CameraConfig.AspectRatio)
	if err := cfg.Validate(); err != nil {
		return err
	}
	sc.CameraConfig.AspectRatio = cfg.AspectRatio

	policy, err := cfg.SplitPolicy()
	if err != nil {
		return err
	}
	world, err := sc.BuildWorld(core.NewSeededSampler(cfg.Seed), policy)
	if err != nil {
		return err
	}
	logger.Infof("scene %q: %d shapes, %d primitives\n%s", sc.Name, len(sc.Shapes), sc.GetPrimitiveCount(), bvhTable(world.Stats(), policy))

	var occlusion integrator.Occlusion
	if cfg.AOSamples > 0 {
		occlusion = integrator.HemisphereOcclusion{Samples: cfg.AOSamples, Distance: cfg.AODistance}
	}

	rt := renderer.NewRaytracer(sc.NewCamera(), world, integrator.NewPathTracer(sc.Background, occlusion), renderer.Config{
		Width:            cfg.Width,
		Height:           cfg.Height(),
		SamplesPerPixel:  cfg.SamplesPerPixel,
		MaxDepth:         cfg.MaxDepth,
		Threads:          cfg.Threads,
		Seed:             cfg.Seed,
		ProgressInterval: cfg.ProgressInterval,
	}, logger)
	rt.SetProgressCallback(func(p renderer.Progress) {
		logger.Infof("scanlines %d/%d (%.1f%%) after %v", p.LinesDone, p.TotalLines, p.Percent(), p.Elapsed.Round(time.Millisecond))
	})

	fb, stats := rt.Render()
	logger.Noticef("render statistics\n%s", renderTable(stats))

	return writeOutputs(context.Background(), cfg, sc.Name, fb)
}

// Override configuration values with explicitly set flags.
func applyFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet("scene") {
		cfg.Scene = ctx.String("scene")
	}
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("spp") {
		cfg.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		cfg.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("threads") {
		cfg.Threads = ctx.Int("threads")
	}
	if ctx.IsSet("seed") {
		cfg.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("ao-samples") {
		cfg.AOSamples = ctx.Int("ao-samples")
	}
	if ctx.IsSet("ao-distance") {
		cfg.AODistance = ctx.Float64("ao-distance")
	}
	if ctx.IsSet("bvh") {
		cfg.BVHPolicy = ctx.String("bvh")
	}
	if ctx.IsSet("out") {
		cfg.OutputDir = ctx.String("out")
	}
	if ctx.IsSet("preview-width") {
		cfg.PreviewWidth = ctx.Int("preview-width")
	}
	if ctx.IsSet("upload") {
		cfg.Upload = ctx.Bool("upload")
	}
}

func writeOutputs(ctx context.Context, cfg *config.Config, sceneName string, fb *renderer.Framebuffer) error {
	artifacts, err := output.BuildArtifacts(fb, output.BaseName(sceneName, output.NewRenderID()), cfg.PreviewWidth)
	if err != nil {
		return err
	}

	fileSink, err := output.NewFileSink(cfg.OutputDir)
	if err != nil {
		return err
	}
	sinks := []output.Sink{fileSink}

	if cfg.Upload {
		s3Sink, err := output.NewS3Sink(output.S3Config{
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
		})
		if err != nil {
			return err
		}
		sinks = append(sinks, s3Sink)
	}

	if err := output.WriteAll(ctx, sinks, artifacts); err != nil {
		return err
	}
	for _, artifact := range artifacts {
		logger.Noticef("wrote %s (%d bytes) to %s", artifact.Name, len(artifact.Data), output.Describe(sinks))
	}
	return nil
}

func renderTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "SPP", "Depth", "Workers", "Samples/s", "Avg. luminance", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		fmt.Sprintf("%.3f", stats.AverageLuminance),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL SAMPLES", fmt.Sprintf("%d", stats.TotalSamples)})
	table.Render()
	return buf.String()
}

func bvhTable(stats geometry.BVHStats, policy geometry.SplitPolicy) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Split policy", "Nodes", "Primitives", "Max depth"})
	table.Append([]string{
		policy.String(),
		fmt.Sprintf("%d", stats.Nodes),
		fmt.Sprintf("%d", stats.Primitives),
		fmt.Sprintf("%d", stats.MaxDepth),
	})
	table.Render()
	return buf.String()
}
