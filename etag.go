// Copyright 2022 Teal.Finance/tiny64 contributors
// This file is part of Teal.Finance/tiny64,
// a tiny Base64 codec under the MIT License.
// SPDX-License-Identifier: MIT

package tiny64

import (
	"encoding/binary"

	"github.com/minio/highwayhash"

	"github.com/teal-finance/tiny64/b64"
)

// etagKey is constant so that the ETags survive a restart.
const etagKey = "tiny64/ETag/HighwayHash/key/0032"

// ETag returns the quoted Base64 form of the HighwayHash-64 of body.
// HighwayHash is a hashing algorithm enabling high speed (especially on AMD64).
func ETag(body []byte) string {
	sum := highwayhash.Sum64(body, []byte(etagKey))

	var bin [8]byte
	binary.BigEndian.PutUint64(bin[:], sum)

	var tag [14]byte // quote + 12 characters + quote
	tag[0] = '"'
	n := b64.Encode(tag[1:13], bin[:])
	tag[1+n] = '"'

	return string(tag[:n+2])
}
