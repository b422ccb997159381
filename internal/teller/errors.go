package teller

import "fmt"

// UpstreamError означает, что Teller API ответил кодом вне диапазона 2xx
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("teller api returned status %d: %s", e.Status, e.Body)
}

// TransportError означает сетевую ошибку при обращении к Teller API
// (DNS, соединение, TLS)
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("teller api unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseParseError означает, что Teller API вернул 2xx, но тело ответа
// не удалось разобрать как ожидаемый JSON
type ResponseParseError struct {
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to parse teller api response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}
