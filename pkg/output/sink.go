package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Sink stores render artifacts
type Sink interface {
	Write(ctx context.Context, artifact Artifact) error
	Describe() string
}

// NewRenderID returns a unique identifier for a render
func NewRenderID() string {
	return uuid.NewString()
}

// BaseName builds the artifact base name for a render of sceneName
func BaseName(sceneName, renderID string) string {
	return fmt.Sprintf("%s-%s", sceneName, renderID)
}

// FileSink writes artifacts into a local directory
type FileSink struct {
	Dir string
}

// NewFileSink creates a sink writing to dir, creating it if needed
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return &FileSink{Dir: dir}, nil
}

// Write stores the artifact as Dir/Name
func (f *FileSink) Write(ctx context.Context, artifact Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(f.Dir, artifact.Name)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Describe returns the destination directory
func (f *FileSink) Describe() string {
	return f.Dir
}

// WriteAll writes every artifact to every sink concurrently and returns the
// first error
func WriteAll(ctx context.Context, sinks []Sink, artifacts []Artifact) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sink := range sinks {
		sink := sink
		for _, artifact := range artifacts {
			artifact := artifact
			g.Go(func() error {
				if err := sink.Write(ctx, artifact); err != nil {
					return fmt.Errorf("%s: %w", sink.Describe(), err)
				}
				return nil
			})
		}
	}
	return g.Wait()
}

// Describe lists the destinations of sinks
func Describe(sinks []Sink) string {
	names := make([]string, len(sinks))
	for i, sink := range sinks {
		names[i] = sink.Describe()
	}
	return strings.Join(names, ", ")
}
