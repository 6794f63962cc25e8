package osenv

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"go.lepovirta.org/boundq/internal/envvar"
)

// OsEnv is the process environment a command runs in.
type OsEnv struct {
	Args    []string
	Fs      billy.Filesystem
	EnvVars envvar.Vars
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func (this *OsEnv) FromRealEnv() {
	this.Args = os.Args
	this.Fs = osfs.New("")
	this.EnvVars.FromEnv()
	this.Stdin = os.Stdin
	this.Stdout = os.Stdout
	this.Stderr = os.Stderr
}

// InMemory is an environment backed by an in-memory filesystem.
// Output written by the command is collected in Stdout and Stderr.
type InMemory struct {
	OsEnv
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

func (this *InMemory) Init(args []string, envVars map[string]string, stdin string) {
	this.Args = args
	this.Fs = memfs.New()
	this.EnvVars.FromMap(envVars)
	this.OsEnv.Stdin = strings.NewReader(stdin)
	this.OsEnv.Stdout = &this.Stdout
	this.OsEnv.Stderr = &this.Stderr
}
