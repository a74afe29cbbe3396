/*
 * Copyright 2021 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package export

type Options struct {
	NormalizeURL bool
}

func DefaultOptions() Options {
	return Options{
		NormalizeURL: false,
	}
}

// WithNormalizedURL decides if target URIs are canonicalized with the WHATWG URL parser before they are written.
func (opt Options) WithNormalizedURL(val bool) Options {
	opt.NormalizeURL = val
	return opt
}
