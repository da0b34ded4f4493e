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
	"log/slog"

	"github.com/coreos/go-systemd/v22/daemon"
)

const (
	sdReady    = daemon.SdNotifyReady
	sdStopping = daemon.SdNotifyStopping
)

// notifySystemd reports a lifecycle state to the service manager.
// It is a no-op when the process was not started with NOTIFY_SOCKET.
func notifySystemd(state string) {
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		slog.Warn("systemd notification failed", "state", state, "error", err)
		return
	}
	if sent {
		slog.Debug("systemd notified", "state", state)
	}
}
