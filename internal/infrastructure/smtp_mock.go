package infrastructure

import (
	"errors"
	"sync"
)

// Mail is a message recorded by SMTPMock instead of being delivered.
type Mail struct {
	Address string
	Subject string
	Body    string
}

type SMTPMock struct {
	mu      sync.Mutex
	sent    []Mail
	failFor map[string]bool
}

func (s *SMTPMock) Send(address, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failFor[address] {
		return errors.New("smtp: delivery failed")
	}
	s.sent = append(s.sent, Mail{Address: address, Subject: subject, Body: body})
	return nil
}

func (s *SMTPMock) From() string {
	return "hub@example.com"
}

// FailFor makes every send to the given address return an error.
func (s *SMTPMock) FailFor(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failFor == nil {
		s.failFor = make(map[string]bool)
	}
	s.failFor[address] = true
}

func (s *SMTPMock) Sent() []Mail {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Mail{}, s.sent...)
}

func (s *SMTPMock) SentTo(address string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, mail := range s.sent {
		if mail.Address == address {
			count++
		}
	}
	return count
}
