package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of store.Client. Variadic forms are matched as a
// single []string argument.
type Client struct {
	mock.Mock
}

func (m *Client) AddForms(list string, forms ...string) error {
	return m.Called(list, forms).Error(0)
}

func (m *Client) Forms(list string) ([]string, error) {
	ret := m.Called(list)

	var forms []string
	if ret.Get(0) != nil {
		forms = ret.Get(0).([]string)
	}
	return forms, ret.Error(1)
}

func (m *Client) Drop(list string) error {
	return m.Called(list).Error(0)
}

func (m *Client) Ready() bool {
	return m.Called().Bool(0)
}
