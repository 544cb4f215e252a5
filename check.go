package sdl2

const (
	symCheckError = "SDL_CheckError"
	symGetError   = "SDL_GetError"
	symClearError = "SDL_ClearError"
)

// CheckError reads and clears SDL's pending error message. It returns nil
// when there is none; a pending message is also logged.
func (l *Library) CheckError() error {
	var msg string
	if l.checkError != nil {
		msg = l.checkError()
	} else {
		msg = l.checkErrorMessage()
	}
	if msg == "" {
		return nil
	}
	return &Error{Message: msg}
}

// checkErrorMessage is published as SDL_CheckError when the binding does
// not provide one.
func (l *Library) checkErrorMessage() string {
	getError, ok := l.table.Get(symGetError).(func() string)
	if !ok {
		return ""
	}
	msg := getError()
	if clearError, ok := l.table.Get(symClearError).(func()); ok {
		clearError()
	}
	if msg != "" {
		l.logger.Error("SDL", "err", msg)
	}
	return msg
}
