package summarizer

import (
	"encoding/hex"

	"github.com/google/uuid"
)

const (
	appName     = "pdf_summarizer"
	sessionUser = "pdf_user"
)

// Session identifies one summarization call to the model runtime. A fresh
// session is created per call and never reused across requests.
type Session struct {
	AppName   string
	UserID    string
	SessionID string
}

func NewSession() Session {
	id := uuid.New()
	return Session{
		AppName:   appName,
		UserID:    sessionUser,
		SessionID: "pdf_session_" + hex.EncodeToString(id[:])[:8],
	}
}
