// Copyright 2025 Naren Yellavula
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

package main

import (
	"errors"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheHelpPageAndGetHelpPage(t *testing.T) {
	c := NewOptimizedHelpCache()
	key := helpCacheKey("rotations", 80)
	page := "Rotations restore balance"

	if got := GetHelpPage(c, key); got != "" {
		t.Errorf("GetHelpPage(%q) = %q; want empty string", key, got)
	}

	CacheHelpPage(c, key, page)

	if got := GetHelpPage(c, key); got != page {
		t.Errorf("GetHelpPage(%q) = %q; want %q", key, got, page)
	}
	if got := GetHelpPage(c, helpCacheKey("rotations", 100)); got != "" {
		t.Errorf("page cached for width 80 leaked into width 100: %q", got)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiring"
	page := "This page should expire soon."

	c.Set(key, page, 100*time.Millisecond)

	if got := GetHelpPage(c, key); got != page {
		t.Errorf("GetHelpPage(%q) = %q; want %q", key, got, page)
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetHelpPage(c, key); got != "" {
		t.Errorf("After expiration, GetHelpPage(%q) = %q; want empty string", key, got)
	}
}

func TestRenderHelpPageRendersOnce(t *testing.T) {
	c := NewOptimizedHelpCache()
	calls := 0
	render := func(topic string, width int) (string, error) {
		calls++
		return topic + " page", nil
	}

	for i := 0; i < 3; i++ {
		got, err := renderHelpPage(c, "keys", 60, render)
		if err != nil {
			t.Fatalf("renderHelpPage returned error: %v", err)
		}
		if got != "keys page" {
			t.Errorf("renderHelpPage = %q; want %q", got, "keys page")
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times; want 1", calls)
	}
}

func TestRenderHelpPageDoesNotCacheErrors(t *testing.T) {
	c := NewOptimizedHelpCache()
	boom := errors.New("boom")
	if _, err := renderHelpPage(c, "keys", 60, func(string, int) (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("renderHelpPage error = %v; want %v", err, boom)
	}
	if got := GetHelpPage(c, helpCacheKey("keys", 60)); got != "" {
		t.Errorf("failed render was cached: %q", got)
	}
}
