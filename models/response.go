package models

// ResponseMessage is the JSON body returned by the compression endpoint.
// Message and File are set on success, Error on failure.
type ResponseMessage struct {
	Message string `json:"message,omitempty"`
	File    string `json:"file,omitempty"`
	Error   string `json:"error,omitempty"`
}
