// Copyright (c) 2025, NutriAI Authors.  All rights reserved.
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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// HandlerTimeout bounds a single API request, including body decoding.
	HandlerTimeout = 15 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server defaults.
const (
	// ServerPort is the listen port used when PORT is not set.
	ServerPort = 10000

	// ServerRateLimit is the sustained request rate in requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the token bucket burst size.
	ServerRateLimitBurst = 200

	// CORSMaxAge is how long browsers may cache a preflight response, in seconds.
	CORSMaxAge = 600
)

// Request limits.
const (
	// MaxRequestBodyBytes caps decoded request bodies.
	MaxRequestBodyBytes int64 = 4 << 20

	// MaxPlanDays is the largest plan the generator accepts.
	MaxPlanDays = 14
)
