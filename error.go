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

package warcstream

import (
	"fmt"
)

// ErrorKind identifies which parsing step failed.
type ErrorKind uint8

const (
	// InvalidVersion means no WARC/<version> line was found.
	InvalidVersion ErrorKind = iota + 1
	// InvalidField means a header line could not be parsed as name:value.
	InvalidField
	// MissingMandatoryFields means the header lacks WARC-Type and/or Content-Length.
	MissingMandatoryFields
	// IncompleteRecord means the stream ended before Content-Length bytes could be read.
	IncompleteRecord
	// InvalidContentLength means Content-Length is not a usable non-negative integer.
	InvalidContentLength
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidVersion:
		return "invalid version"
	case InvalidField:
		return "invalid field"
	case MissingMandatoryFields:
		return "missing mandatory fields"
	case IncompleteRecord:
		return "incomplete record"
	case InvalidContentLength:
		return "invalid content length"
	default:
		return fmt.Sprintf("unknown error kind %d", uint8(k))
	}
}

// Sentinel errors for use with errors.Is. A *ParseError matches the sentinel with the same Kind.
var (
	ErrInvalidVersion         = &ParseError{Kind: InvalidVersion}
	ErrInvalidField           = &ParseError{Kind: InvalidField}
	ErrMissingMandatoryFields = &ParseError{Kind: MissingMandatoryFields}
	ErrIncompleteRecord       = &ParseError{Kind: IncompleteRecord}
	ErrInvalidContentLength   = &ParseError{Kind: InvalidContentLength}
)

// ParseError is returned for every record that could not be parsed.
type ParseError struct {
	Kind ErrorKind
	// Line is the offending input line or field value. It is empty when there is nothing to report,
	// e.g. when the end of the stream was reached while looking for a version line.
	Line string
	// Err is the underlying read error, if any other than io.EOF caused the failure.
	Err error
}

func newParseError(kind ErrorKind, line string) *ParseError {
	return &ParseError{Kind: kind, Line: line}
}

func newWrappedParseError(kind ErrorKind, line string, wrapped error) *ParseError {
	return &ParseError{Kind: kind, Line: line, Err: wrapped}
}

func (e *ParseError) Error() string {
	msg := "warcstream: " + e.Kind.String()
	if e.Line != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Line)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}
