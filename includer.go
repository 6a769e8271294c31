/*
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package includer flattens a source file by inlining its local
// #include "..." directives, keeping only the first copy of every
// #ifndef-guarded header.
package includer

import (
	"log/slog"

	"github.com/fwessels/includer/internal/preprocessor"
)

const Version = "0.1.0"

// Defines is the guard symbol set of one top-level invocation.
type Defines = preprocessor.Defines

func NewDefines(names ...string) Defines {
	return preprocessor.NewDefines(names...)
}

var (
	ErrNotFound        = preprocessor.ErrNotFound
	ErrUnbalancedEndif = preprocessor.ErrUnbalancedEndif
	ErrIncludeDepth    = preprocessor.ErrIncludeDepth
)

type Options struct {
	// Dirs are searched in order; empty means the working directory
	// followed by ../library.
	Dirs     []string
	MaxDepth int
	Logger   *slog.Logger
}

// Expand processes name with a fresh define set and the default search
// directories.
func Expand(name string) (string, error) {
	return ExpandWith(name, nil, Options{})
}

// ExpandWith processes name, recording guard symbols in defines. A nil
// defines starts a fresh set.
func ExpandWith(name string, defines Defines, opts Options) (string, error) {
	loader := preprocessor.NewFileLoader(opts.Dirs...)
	loader.Logger = opts.Logger

	in := preprocessor.NewIncluder(loader)
	if opts.MaxDepth > 0 {
		in.MaxDepth = opts.MaxDepth
	}
	in.Logger = opts.Logger
	return in.Process(name, defines)
}
