// Package analysis orchestrates a run: discover files, reuse cached results
// for unchanged content, and parse and measure the rest in parallel.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kdvornik/metra/internal/cache"
	"github.com/kdvornik/metra/internal/fileproc"
	"github.com/kdvornik/metra/internal/report"
	"github.com/kdvornik/metra/internal/scanner"
	"github.com/kdvornik/metra/pkg/config"
	"github.com/kdvornik/metra/pkg/parser"
	"github.com/kdvornik/metra/pkg/spaces"
)

// Options tune a single run beyond what the config provides.
type Options struct {
	Language  parser.Language  // restrict to one language; empty means all
	Selection spaces.Selection // metric families to compute; nil means all
	NoCache   bool
	Progress  fileproc.ProgressFunc
}

// Service runs metric and operator analyses over files and directories.
type Service struct {
	cfg   *config.Config
	cache *cache.Cache
	scan  *scanner.Scanner
}

// New builds a service from the given config.
func New(cfg *config.Config) (*Service, error) {
	c, err := cache.New(cfg.Cache.Dir, cfg.Cache.TTL, cfg.Cache.Enabled)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return &Service{
		cfg:   cfg,
		cache: c,
		scan:  scanner.NewScanner(cfg),
	}, nil
}

// Cache exposes the result cache, mainly so callers can clear it.
func (s *Service) Cache() *cache.Cache {
	return s.cache
}

// CollectFiles expands the given paths, files and directories mixed, into the
// analyzable file list, honoring the exclusion rules and the file size limit.
func (s *Service) CollectFiles(paths []string, language parser.Language) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := s.scan.ScanDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", path, err)
			}
			files = append(files, found...)
			continue
		}
		ok, err := s.scan.ScanFile(path)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, path)
		}
	}

	if language != "" {
		files = s.scan.FilterByLanguage(files, language)
	}
	files, _ = scanner.FilterBySize(files, s.cfg.Analysis.MaxFileSize)
	return files, nil
}

// Metrics analyzes the given paths and returns one entry per processed file.
// Per-file failures are collected, not fatal.
func (s *Service) Metrics(ctx context.Context, paths []string, opts Options) ([]report.File, *fileproc.ProcessingErrors, error) {
	files, err := s.CollectFiles(paths, opts.Language)
	if err != nil {
		return nil, nil, err
	}
	results, errs := s.MetricsFiles(ctx, files, opts)
	return results, errs, nil
}

// MetricsFiles analyzes an already collected file list.
func (s *Service) MetricsFiles(ctx context.Context, files []string, opts Options) ([]report.File, *fileproc.ProcessingErrors) {
	useCache := !opts.NoCache
	results, errs := fileproc.MapFilesWithContext(ctx, files, s.cfg.Analysis.Jobs,
		func(p *parser.Parser, path string) (report.File, error) {
			language := parser.DetectLanguage(path)

			var hash, key string
			if useCache {
				var err error
				hash, err = cache.HashFile(path)
				if err != nil {
					return report.File{}, err
				}
				key = metricsKey(path, opts.Selection)
				if data, ok := s.cache.Get(key, hash); ok {
					var root spaces.FuncSpace
					if json.Unmarshal(data, &root) == nil {
						return report.File{Path: path, Language: language, Spaces: &root}, nil
					}
				}
			}

			result, err := p.ParseFile(path)
			if err != nil {
				return report.File{}, err
			}
			root := spaces.Metrics(result, opts.Selection)
			if root == nil {
				return report.File{}, fmt.Errorf("unsupported language: %s", path)
			}

			if useCache {
				if data, err := json.Marshal(root); err == nil {
					_ = s.cache.Set(key, hash, data)
				}
			}
			return report.File{Path: path, Language: language, Spaces: root}, nil
		}, opts.Progress)

	return results, errs
}

// Ops extracts the distinct operators and operands of every space in the
// given paths. Ops runs uncached: the result is dominated by parse time.
func (s *Service) Ops(ctx context.Context, paths []string, opts Options) ([]report.OpsFile, *fileproc.ProcessingErrors, error) {
	files, err := s.CollectFiles(paths, opts.Language)
	if err != nil {
		return nil, nil, err
	}
	results, errs := s.OpsFiles(ctx, files, opts)
	return results, errs, nil
}

// OpsFiles extracts operators and operands from an already collected file
// list.
func (s *Service) OpsFiles(ctx context.Context, files []string, opts Options) ([]report.OpsFile, *fileproc.ProcessingErrors) {
	results, errs := fileproc.MapFilesWithContext(ctx, files, s.cfg.Analysis.Jobs,
		func(p *parser.Parser, path string) (report.OpsFile, error) {
			result, err := p.ParseFile(path)
			if err != nil {
				return report.OpsFile{}, err
			}
			root := spaces.OperandsAndOperators(result)
			if root == nil {
				return report.OpsFile{}, fmt.Errorf("unsupported language: %s", path)
			}
			return report.OpsFile{Path: path, Language: result.Language, Ops: root}, nil
		}, opts.Progress)

	return results, errs
}

// metricsKey builds the cache key for a file under a metric selection:
// selections compute different subsets, so they cache separately.
func metricsKey(path string, sel spaces.Selection) string {
	if len(sel) == 0 {
		return "metrics:all:" + path
	}
	names := make([]string, 0, len(sel))
	for m := range sel {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return "metrics:" + strings.Join(names, ",") + ":" + path
}
