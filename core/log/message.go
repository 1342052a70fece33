// Copyright (C) 2020 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"bytes"
	"fmt"
	"time"
)

// Message is a single logged record.
type Message struct {
	// Text is the message text.
	Text string
	// Time is the time the message was logged.
	Time time.Time
	// Severity is the urgency of the message.
	Severity Severity
	// Tag is the tag of the logger that created the message.
	Tag string
	// Values are the key-value pairs bound to the logging context.
	Values Values
}

// Value is a single key-value pair bound to a logging context.
type Value struct {
	Name  string
	Value interface{}
}

// Values is a list of Value, ordered by name.
type Values []*Value

func (v Values) Len() int           { return len(v) }
func (v Values) Less(i, j int) bool { return v[i].Name < v[j].Name }
func (v Values) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }

// String returns a string representation of the message, including its tag
// and bound values.
func (m *Message) String() string {
	buf := &bytes.Buffer{}
	buf.WriteString(m.Severity.Short())
	if m.Tag != "" {
		fmt.Fprintf(buf, " [%s]", m.Tag)
	}
	buf.WriteString(": ")
	buf.WriteString(m.Text)
	for _, v := range m.Values {
		fmt.Fprintf(buf, " %s: %v", v.Name, v.Value)
	}
	return buf.String()
}
