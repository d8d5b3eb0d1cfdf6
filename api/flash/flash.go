// Package flash stores one-shot user notices in the cookie session,
// shown on the next rendered page.
package flash

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Message is a single notice with its display kind.
type Message struct {
	Kind string // "success" or "error"
	Text string
}

// Success queues a success notice.
func Success(c *gin.Context, text string) {
	add(c, "success", text)
}

// Error queues an error notice.
func Error(c *gin.Context, text string) {
	add(c, "error", text)
}

func add(c *gin.Context, kind, text string) {
	session := sessions.Default(c)
	session.AddFlash(kind + "|" + text)
	// Save errors only lose the notice, never the request.
	_ = session.Save()
}

// Take drains and returns all queued notices.
func Take(c *gin.Context) []Message {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save()

	messages := make([]Message, 0, len(raw))
	for _, f := range raw {
		s, ok := f.(string)
		if !ok {
			continue
		}
		kind, text, found := strings.Cut(s, "|")
		if !found {
			kind, text = "success", s
		}
		messages = append(messages, Message{Kind: kind, Text: text})
	}
	return messages
}
