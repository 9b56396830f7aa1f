package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const servedBySuffix = " served by nodejs app"

var (
	App2 = Service{Name: "App2", Route: "/pri/runservice2"}
	App3 = Service{Name: "App3", Route: "/runservice3"}
)

// Service is a single canned-response endpoint: one exact route, one message.
type Service struct {
	Name  string
	Route string
}

// Message is the JSON document returned on the service route.
type Message struct {
	Message string `json:"message"`
}

func (s Service) Validate() error {
	if s.Name == "" {
		return errors.New("service name is empty")
	}
	if !strings.HasPrefix(s.Route, "/") {
		return fmt.Errorf("service %s: route %q must start with /", s.Name, s.Route)
	}
	return nil
}

func (s Service) Message() Message {
	return Message{Message: s.Name + servedBySuffix}
}

// Body returns the compact JSON encoding of the service message.
func (s Service) Body() ([]byte, error) {
	return json.Marshal(s.Message())
}
