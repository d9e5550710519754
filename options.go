// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tablediff

import "znkr.io/tablediff/internal/config"

// Option configures the behavior of [Compare].
//
// Besides [MaxCells], [Compare] accepts the tokenizer options from textdiff, they are used to
// compare changed text cells.
type Option = config.Option

// MaxCells limits the cost of a comparison. [Compare] returns [ErrTooLarge] if the row or the
// column alignment would need a table with more than n entries, that is if
// (rows(x)+1)·(rows(y)+1) > n or (cols(x)+1)·(cols(y)+1) > n. The same limit applies to the token
// alignment of a changed text cell: if it would exceed n entries, the cell is reported as
// [ChangedValue] instead of [ChangedText]. A value <= 0 disables the limit, which is the default.
func MaxCells(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxCells = max(0, n)
		return config.MaxCells
	}
}
