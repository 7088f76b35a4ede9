package emblem

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Logger is used to print notifications and parse errors when using the
// "WatchFiles" feature.
var Logger = log.New(os.Stderr, "[emblem] ", 0)

// Extension is the file extension of expression files picked up by
// AddExpressionDir.
const Extension = ".exprs"

type exprFile struct {
	name, content string
	onDisk        bool
}

// Bundle is a collection of expression sources, each holding one expression
// per line.  It parses them together and can re-parse when files change.
type Bundle struct {
	files                 []exprFile
	err                   error
	watcher               *fsnotify.Watcher
	recompiling           sync.Once
	recompilationCallback func([]Expression)
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{}
}

// WatchFiles tells the bundle to watch any expression files added to it and
// re-parse them as necessary, passing the result to the recompilation
// callback.  It should be called once, before adding any files.
func (b *Bundle) WatchFiles(watch bool) *Bundle {
	if watch && b.err == nil && b.watcher == nil {
		b.watcher, b.err = fsnotify.NewWatcher()
	}
	return b
}

// AddExpressionDir adds all expression files found within the given directory
// (including sub-directories) to the bundle.
func (b *Bundle) AddExpressionDir(root string) *Bundle {
	var err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, Extension) {
			return nil
		}
		b.AddExpressionFile(path)
		return nil
	})
	if err != nil {
		b.err = err
	}
	return b
}

// AddExpressionFile adds the given expression file to this bundle.
// If WatchFiles is on, it will be subsequently watched for updates.
func (b *Bundle) AddExpressionFile(filename string) *Bundle {
	content, err := os.ReadFile(filename)
	if err != nil {
		b.err = err
	}
	if b.err == nil && b.watcher != nil {
		b.err = b.watcher.Add(filename)
	}
	b.files = append(b.files, exprFile{filename, string(content), true})
	return b
}

// AddExpressionString adds the given expressions to the bundle. The name is
// only used for error messages - it does not need to be provided nor does it
// need to be a real filename.
func (b *Bundle) AddExpressionString(filename, content string) *Bundle {
	b.files = append(b.files, exprFile{filename, content, false})
	return b
}

// SetRecompilationCallback assigns the bundle a function to call with the
// freshly parsed expressions after a watched file changes.
func (b *Bundle) SetRecompilationCallback(c func([]Expression)) *Bundle {
	b.recompilationCallback = c
	return b
}

// Compile parses all of the expressions in this bundle, in the order the
// sources were added.  It stops at the first invalid expression.  When
// watching, the first successful call starts re-parsing on changes.
func (b *Bundle) Compile() ([]Expression, error) {
	if b.err != nil {
		return nil, b.err
	}

	var exprs []Expression
	for _, f := range b.files {
		var parsed, err = ParseExpressions(f.name, strings.NewReader(f.content))
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, parsed...)
	}

	if b.watcher != nil {
		b.recompiling.Do(func() { go b.recompiler() })
	}
	return exprs, nil
}

// Close stops watching files.
func (b *Bundle) Close() error {
	if b.watcher == nil {
		return nil
	}
	return b.watcher.Close()
}

func (b *Bundle) recompiler() {
	for {
		select {
		case ev, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			// If it's a rename, then fsnotify has removed the watch.
			// Add it back, after a delay.
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				time.Sleep(10 * time.Millisecond)
				if err := b.watcher.Add(ev.Name); err != nil {
					Logger.Println(err)
				}
			}

			// Re-parse everything.
			var bundle = NewBundle()
			for _, f := range b.files {
				if f.onDisk {
					bundle.AddExpressionFile(f.name)
				} else {
					bundle.AddExpressionString(f.name, f.content)
				}
			}
			var exprs, err = bundle.Compile()
			if err != nil {
				Logger.Println(err)
				continue
			}

			if b.recompilationCallback != nil {
				b.recompilationCallback(exprs)
			}
			Logger.Printf("update successful (%v)", ev)

		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			Logger.Println(err)
		}
	}
}
