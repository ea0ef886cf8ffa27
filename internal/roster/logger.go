package roster

import (
	"log"
	"time"
)

// LogRequest logs an outbound API request.
func LogRequest(source, method, url string, params map[string]string) {
	if len(params) > 0 {
		log.Printf("[%s] %s %s params=%v", source, method, url, params)
	} else {
		log.Printf("[%s] %s %s", source, method, url)
	}
}

// LogResponse logs an API response received.
func LogResponse(source string, statusCode int, duration time.Duration, resultCount int) {
	log.Printf("[%s] response status=%d duration=%dms results=%d",
		source, statusCode, duration.Milliseconds(), resultCount)
}

// LogError logs an error from a source operation.
func LogError(source, operation string, err error) {
	log.Printf("[%s] %s error: %v", source, operation, err)
}

// LogLoad logs the size of a loaded snapshot.
func LogLoad(source string, d Data, duration time.Duration) {
	log.Printf("[%s] loaded members=%d contacts=%d gender=%d localities=%d in %dms",
		source, len(d.Members), len(d.Contacts), len(d.Gender), len(d.Localities), duration.Milliseconds())
}

// LogSave logs rows written to a store.
func LogSave(source string, count int, duration time.Duration) {
	log.Printf("[%s] saved %d records in %dms", source, count, duration.Milliseconds())
}
