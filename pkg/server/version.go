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

package server

import (
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is the version used when the client does not ask for one.
	DefaultAPIVersion = "v1"

	vendorMediaPrefix = "application/vnd.nutriai."
)

var supportedAPIVersions = map[string]bool{
	"v1": true,
}

// negotiateAPIVersion reads the version from a vendor media type in the
// Accept header, e.g. application/vnd.nutriai.v1+json.
func negotiateAPIVersion(r *http.Request) string {
	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		mt := strings.TrimSpace(strings.SplitN(accept, ";", 2)[0])
		rest, ok := strings.CutPrefix(mt, vendorMediaPrefix)
		if !ok {
			continue
		}
		version, _, _ := strings.Cut(rest, "+")
		if supportedAPIVersions[version] {
			return version
		}
	}
	return DefaultAPIVersion
}

// SetAPIVersionHeader sets the API version header in the response.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
