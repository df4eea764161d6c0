package port

import (
	"fmt"

	"github.com/hostspec/hostspec/backend"
	"github.com/hostspec/hostspec/model"
)

// Netstat answers is_listening via "netstat -tunl | grep -- :<port>";
// the success bit of the pipeline is the answer.
type Netstat struct{}

func (Netstat) IsListening(b backend.Backend, p uint16) (model.Output, error) {
	spec := model.Cmd("netstat -tunl").Pipe(fmt.Sprintf("grep -- :%d", p))
	return model.OutputBool(b.Probe(spec)), nil
}
