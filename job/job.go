package job

import (
	"errors"
	"fmt"
	"github.com/dop251/goja"
	"github.com/google/uuid"
	"io"
	"lnodelist/dao"
	"lnodelist/js_exec"
	"lnodelist/logger"
	"time"
)

const defaultTimeout = 10 * time.Second

var ErrTimeout = errors.New("script timed out")

// Job is one script run. Every run gets its own runtime; a runtime is not
// safe for concurrent use, lists created by the script die with it.
type Job struct {
	JobId   string // should be unique.
	Script  string
	Dao     dao.Dao
	Timeout time.Duration
}

func Create(script string, d dao.Dao) *Job {
	return &Job{
		JobId:   uuid.NewString(),
		Script:  script,
		Dao:     d,
		Timeout: defaultTimeout,
	}
}

// Run executes the script with the plain console.
func (j *Job) Run() error {
	vm := goja.New()
	js_exec.LoadModules(vm, j.Dao)
	return j.exec(vm)
}

// RunForDebug executes the script with console output sent to writer.
func (j *Job) RunForDebug(writer io.Writer) error {
	vm := goja.New()
	js_exec.LoadModulesForDebugMode(vm, j.Dao, writer)
	return j.exec(vm)
}

func (j *Job) exec(vm *goja.Runtime) error {
	if j.Timeout > 0 {
		timer := time.AfterFunc(j.Timeout, func() {
			vm.Interrupt(ErrTimeout)
		})
		defer timer.Stop()
	}
	start := time.Now()
	_, err := vm.RunString(j.Script) // running logic.
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			err = fmt.Errorf("job %s: %w", j.JobId, ErrTimeout)
		}
		logger.Error(fmt.Sprintf("running job failed:%s %s", j.JobId, err.Error()))
		return err
	}
	logger.Debug(fmt.Sprintf("job %s finished in %s", j.JobId, time.Since(start)))
	return nil
}
