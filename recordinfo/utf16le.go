// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recordinfo

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeUTF16LE transcodes s to UTF-16LE bytes, shared by the WString /
// VWString field codec and the UTF-16LE schema XML envelope.
func encodeUTF16LE(s string) ([]byte, error) {
	return utf16LE.NewEncoder().Bytes([]byte(s))
}

// decodeUTF16LE transcodes UTF-16LE bytes back to a UTF-8 Go string.
func decodeUTF16LE(b []byte) (string, error) {
	out, _, err := transform.Bytes(utf16LE.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
