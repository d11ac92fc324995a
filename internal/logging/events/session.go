package events

import "github.com/atomicstack/ams/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) List(count int) {
	logging.Trace("session.list", map[string]interface{}{"count": count})
}

func (SessionTracer) ListError(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.list.error", map[string]interface{}{"error": err.Error()})
}

func (SessionTracer) Get(name, status string) {
	logging.Trace("session.get", map[string]interface{}{"name": name, "status": status})
}

func (SessionTracer) Create(name, directory string) {
	logging.Trace("session.create", map[string]interface{}{"name": name, "directory": directory})
}

func (SessionTracer) Kill(name string) {
	logging.Trace("session.kill", map[string]interface{}{"name": name})
}

func (SessionTracer) Attach(name, verb string) {
	logging.Trace("session.attach", map[string]interface{}{"name": name, "verb": verb})
}
