package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per portal event with
// module/action/request_id. Events outside a request (startup, ledger
// pruning) pass an empty id, shown as "-". Never log guest details here.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
