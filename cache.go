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
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	helpCacheExpiration = 30 * time.Minute
	helpCacheCleanup    = 5 * time.Minute
)

// NewOptimizedHelpCache creates the cache for rendered help pages
func NewOptimizedHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

// helpCacheKey keys a rendered page by topic and wrap width
func helpCacheKey(topic string, width int) string {
	return fmt.Sprintf("%s@%d", topic, width)
}

func CacheHelpPage(c *cache.Cache, key string, page string) {
	c.Set(key, page, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// renderHelpPage returns the cached page for topic at width, rendering and
// caching it on a miss
func renderHelpPage(c *cache.Cache, topic string, width int, render func(topic string, width int) (string, error)) (string, error) {
	key := helpCacheKey(topic, width)
	if page := GetHelpPage(c, key); page != "" {
		return page, nil
	}
	page, err := render(topic, width)
	if err != nil {
		return "", err
	}
	CacheHelpPage(c, key, page)
	return page, nil
}
