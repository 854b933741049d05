/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Watch keeps cat in sync with the catalog files of dir until ctx is done.
//
// A change to a file reloads its locale from every file of that locale
// still in dir; when none is left the locale is dropped. Files whose
// extension f does not accept are ignored. Reload errors are logged and leave the previous table in place.
//
// Watch returns once the watcher is set up. The watching goroutine exits
// when ctx is canceled.
func Watch(ctx context.Context, cat *Catalog, dir string, f Format, log zerolog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	log.Debug().Str("dir", dir).Str("format", f.String()).Msg("watching catalog directory")

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				handleEvent(cat, ev, f, log)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("dir", dir).Msg("catalog watcher error")
			}
		}
	}()
	return nil
}

func handleEvent(cat *Catalog, ev fsnotify.Event, f Format, log zerolog.Logger) {
	name := filepath.Clean(ev.Name)
	if !f.Accepts(name) {
		return
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return
	}
	tag, err := LocaleOf(name)
	if err != nil {
		return
	}

	files, err := siblings(filepath.Dir(name), tag, f)
	if err != nil {
		log.Warn().Err(err).Str("file", name).Msg("catalog reload failed")
		return
	}
	if len(files) == 0 {
		cat.Remove(tag)
		log.Info().Str("locale", tag.String()).Msg("catalog locale removed")
		return
	}
	if err := cat.loadLocale(readFile, tag, files, f); err != nil {
		log.Warn().Err(err).Str("file", name).Msg("catalog reload failed")
		return
	}
	log.Info().Str("locale", tag.String()).Int("files", len(files)).Msg("catalog reloaded")
}

// siblings lists the catalog files of dir that belong to tag, in name order.
func siblings(dir string, tag language.Tag, f Format) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !f.Accepts(e.Name()) {
			continue
		}
		if t, err := LocaleOf(e.Name()); err == nil && t.String() == tag.String() {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}
