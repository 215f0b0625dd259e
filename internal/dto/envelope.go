package dto

// Envelope is the uniform body of every JSON response.
type Envelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success wraps data in a successful envelope.
func Success(message string, data any) Envelope {
	return Envelope{Status: true, Message: message, Data: data}
}

// Failure builds an error envelope with no data.
func Failure(message string) Envelope {
	return Envelope{Status: false, Message: message, Data: nil}
}
