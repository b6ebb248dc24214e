// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/go-sif-keeper/models"
)

func TestHasher_Hash(t *testing.T) {
	key := "secret-key"
	h := NewHasher(key)

	data := []byte("test-data")

	sum1 := h.Hash(data)
	sum2 := h.Hash(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	expected := mac.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_SignAndVerify_WithItemID(t *testing.T) {
	h := NewHasher("pairing")

	body, err := json.Marshal(models.ItemID{DeviceID: "d", VaultID: "v", ItemID: "i"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	sig := h.Sign(body)
	if sig != HashString(string(body), "pairing") {
		t.Fatal("Sign must match HashString for the same key")
	}
	if !h.Verify(body, sig) {
		t.Fatal("signature must verify")
	}

	tampered := append([]byte{}, body...)
	tampered[len(tampered)-2] = 'x'
	if h.Verify(tampered, sig) {
		t.Fatal("signature must not verify for a different body")
	}
	if h.Verify(body, "not-hex") {
		t.Fatal("malformed signature must not verify")
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")

	a := NewHasher("key-a")
	b := NewHasher("key-b")

	if bytes.Equal(a.Hash(data), b.Hash(data)) {
		t.Fatal("different keys must produce different digests")
	}
	if b.Verify(data, a.Sign(data)) {
		t.Fatal("signature of another key must not verify")
	}
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher("k")
	want := h.Sign([]byte("x"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.Sign([]byte("x")); got != want {
				t.Errorf("concurrent Sign mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestHashString(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("k"))
	mac.Write([]byte("data"))

	if got := HashString("data", "k"); got != hex.EncodeToString(mac.Sum(nil)) {
		t.Fatalf("unexpected HashString %s", got)
	}
}
