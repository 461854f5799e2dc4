// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvtext

import (
	"bufio"
	"io"
)

// NewLineSource wraps r in a bufio.Scanner and returns a LineSource over
// its lines, in order.
func NewLineSource(r io.Reader) LineSource {
	sc := bufio.NewScanner(r)
	return func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return sc.Text(), nil
	}
}

// WriteLines drains src to w, one line per call, newline-terminated.
func WriteLines(w io.Writer, src LineSource) error {
	bw := bufio.NewWriter(w)
	for {
		line, err := src()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
