package responders

import (
	"fmt"
	"net/http"
)

type WebSimpleResponder struct{}

func (_ *WebSimpleResponder) OnHealthy(w http.ResponseWriter) {
	fmt.Fprintln(w, "ok")
}
