package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"zag/internal/diag"
	"zag/internal/parser"
	"zag/internal/source"
)

// CheckOptions tunes a multi-file check run.
type CheckOptions struct {
	// MaxDiagnostics caps the bag of every file, not the run total.
	MaxDiagnostics int
	// Jobs bounds the parse workers; 0 means GOMAXPROCS.
	Jobs int
	// Cache, when set, replays diagnostics for files whose content
	// hash is already cached and stores fresh results back.
	Cache *DiskCache
}

// CheckResult is the outcome for one file of a check run.
type CheckResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// CollectFiles expands the given paths into a sorted list of source
// files. Directories are walked recursively for *.zag files; explicit
// file paths are taken as-is.
func CollectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".zag") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// CheckMany parses every file in parallel and collects per-file
// diagnostics. Result order matches the input order. File load
// failures become IO diagnostics rather than aborting the run.
func CheckMany(ctx context.Context, files []string, opts CheckOptions) (*source.FileSet, []CheckResult, error) {
	limit, err := safecast.Conv[uint16](opts.MaxDiagnostics)
	if err != nil {
		return nil, nil, err
	}
	maxDiagnostics := int(limit)

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading mutates the set, so it happens up front on one goroutine.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			// Register an empty stand-in so the diagnostic still
			// resolves to the right path.
			fileIDs[path] = fileSet.AddVirtual(path, nil)
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// Each worker writes only its own index.
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			bag := diag.NewBag(maxDiagnostics)
			fileID := fileIDs[path]
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.New(diag.SevError, diag.IOLoadFileError,
					source.Span{File: fileID}, "failed to load file: "+loadErr.Error()))
				results[i] = CheckResult{Path: path, FileID: fileID, Bag: bag}
				return nil
			}

			file := fileSet.Get(fileID)
			results[i] = checkOne(path, fileID, file, bag, opts.Cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func checkOne(path string, fileID source.FileID, file *source.File, bag *diag.Bag, cache *DiskCache) CheckResult {
	if cache != nil {
		var payload DiskPayload
		if ok, err := cache.Get(file.Hash, &payload); err == nil && ok {
			replayDiagnostics(&payload, fileID, bag)
			return CheckResult{Path: path, FileID: fileID, Bag: bag, FromCache: true}
		}
	}

	tree := parser.Parse(file.Content)
	// Recovery can re-report the same token; dedup keeps one.
	diag.FromTree(tree, fileID, diag.NewDedupReporter(&diag.BagReporter{Bag: bag}))
	bag.Sort()

	if cache != nil {
		// Best effort; a failed write never fails the check.
		_ = cache.Put(file.Hash, cacheDiagnostics(path, file, bag))
	}
	return CheckResult{Path: path, FileID: fileID, Bag: bag}
}
