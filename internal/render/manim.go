package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"animagen/internal/domain"
	"animagen/internal/infra"
)

// Options configures the manim invoker.
type Options struct {
	Binary        string
	ScratchDir    string
	Timeout       time.Duration
	MaxConcurrent int64
	Logger        infra.Logger
}

// Invoker renders generated animation code by running the manim CLI as a
// subprocess. Every invocation gets a fresh unique id, so concurrent renders
// sharing the scratch directory never collide on paths.
type Invoker struct {
	binary     string
	scratchDir string
	timeout    time.Duration
	sem        *semaphore.Weighted
	log        infra.Logger
}

type qualityPreset struct {
	flag       string
	resolution string
}

// Three fixed tiers; anything else resolves to the lowest.
var qualityPresets = map[domain.Quality]qualityPreset{
	domain.QualityLow:    {flag: "-ql", resolution: "480p15"},
	domain.QualityMedium: {flag: "-qm", resolution: "720p30"},
	domain.QualityHigh:   {flag: "-qh", resolution: "1080p60"},
}

var sceneClassRegexp = regexp.MustCompile(`class (\w+)\(Scene\):`)

// NewInvoker constructs an Invoker and ensures the scratch directory exists.
func NewInvoker(opts Options) (*Invoker, error) {
	binary := strings.TrimSpace(opts.Binary)
	if binary == "" {
		binary = "manim"
	}
	scratchDir := strings.TrimSpace(opts.ScratchDir)
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return nil, fmt.Errorf("render: ensure scratch dir: %w", err)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 4 * time.Minute
	}
	var sem *semaphore.Weighted
	if opts.MaxConcurrent > 0 {
		sem = semaphore.NewWeighted(opts.MaxConcurrent)
	}
	return &Invoker{
		binary:     binary,
		scratchDir: scratchDir,
		timeout:    timeout,
		sem:        sem,
		log:        opts.Logger,
	}, nil
}

// Render persists code to a scratch script, runs the renderer with the
// quality preset, and returns the produced video bytes. Scratch files are
// removed best-effort on every exit path; removal failures are logged, never
// propagated.
func (i *Invoker) Render(ctx context.Context, code string, quality domain.Quality) ([]byte, error) {
	if i.sem != nil {
		if err := i.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("%w: waiting for render slot: %v", domain.ErrRenderFailed, err)
		}
		defer i.sem.Release(1)
	}

	id := uuid.NewString()
	scriptPath := filepath.Join(i.scratchDir, "scene_"+id+".py")
	outputName := id + ".mp4"

	if err := os.WriteFile(scriptPath, []byte(code), 0o644); err != nil {
		return nil, fmt.Errorf("%w: write scratch script: %v", domain.ErrRenderFailed, err)
	}
	defer func() {
		if err := os.Remove(scriptPath); err != nil {
			i.log.Warn().Err(err).Str("path", scriptPath).Msg("failed to remove scratch script")
		}
	}()

	match := sceneClassRegexp.FindStringSubmatch(code)
	if match == nil {
		return nil, fmt.Errorf("%w: no Scene class found in generated code", domain.ErrRenderFailed)
	}
	sceneName := match[1]

	preset, ok := qualityPresets[quality]
	if !ok {
		preset = qualityPresets[domain.QualityLow]
	}

	cctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	args := []string{
		preset.flag,
		"--format=mp4",
		"--media_dir", i.scratchDir,
		"-o", outputName,
		"--progress_bar", "none",
		scriptPath,
		sceneName,
	}
	cmd := exec.CommandContext(cctx, i.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// an orphaned child holding the output pipes must not block the caller
	// after the deadline fires
	cmd.WaitDelay = time.Second

	i.log.Debug().Str("scene", sceneName).Str("quality", string(quality)).Msg("starting render")
	err := cmd.Run()
	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: renderer exceeded %s", domain.ErrRenderTimeout, i.timeout)
	}
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrRenderFailed, detail)
	}

	artifactPath := i.locateArtifact(id, outputName, preset.resolution)
	if artifactPath == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, outputName)
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read artifact: %v", domain.ErrArtifactNotFound, err)
	}

	i.cleanupArtifacts(id, artifactPath)
	return data, nil
}

// locateArtifact checks the renderer's expected output layout first and falls
// back to walking the scratch directory for the chosen filename.
func (i *Invoker) locateArtifact(id, outputName, resolution string) string {
	expected := filepath.Join(i.scratchDir, "videos", "scene_"+id, resolution, outputName)
	if _, err := os.Stat(expected); err == nil {
		return expected
	}

	var found string
	_ = filepath.WalkDir(i.scratchDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Name() == outputName {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func (i *Invoker) cleanupArtifacts(id, artifactPath string) {
	if err := os.Remove(artifactPath); err != nil {
		i.log.Warn().Err(err).Str("path", artifactPath).Msg("failed to remove artifact")
	}
	sceneDir := filepath.Join(i.scratchDir, "videos", "scene_"+id)
	if err := os.RemoveAll(sceneDir); err != nil {
		i.log.Warn().Err(err).Str("path", sceneDir).Msg("failed to remove render media")
	}
}
