package events

import "github.com/atomicstack/ams/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Refresh(count int, err error) {
	payload := map[string]interface{}{"count": count}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("selector.refresh", payload)
}

func (UITracer) Cursor(index int) {
	logging.Trace("selector.cursor", map[string]interface{}{"index": index})
}

func (UITracer) Confirm(name string) {
	logging.Trace("selector.confirm", map[string]interface{}{"name": name})
}

func (UITracer) Quit(key string) {
	logging.Trace("selector.quit", map[string]interface{}{"key": key})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("selector.resize", map[string]interface{}{"width": width, "height": height})
}
