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

/*
Package warcstream reads WARC records one at a time from a forward-only byte stream.

# WARC

The WARC format stores captured network resources, typically crawled HTTP responses, as a sequence of
self-describing records in a single file. Each record starts with a version line (WARC/1.0), continues with a
block of header fields terminated by a blank line and ends with a body of exactly Content-Length bytes.

# Parse WARC records

[ReadRecord] parses the record starting at the current stream position and fails with [InvalidVersion] if the
stream is not positioned at a version line.

[ReadSubsequentRecord] discards any lines preceding the next version line before parsing. Use it to keep
reading after a corrupted record.

Both return a [*ParseError] on failure. The stream is left where the failing step stopped reading, so a caller
can log the error and continue with [ReadSubsequentRecord].

The [Reader] is used to read whole WARC files or stdin. It is initialized with [NewReader] or [OpenFile].
*/
package warcstream
