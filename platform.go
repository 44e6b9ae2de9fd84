package transcode

import (
	"fmt"

	"github.com/gottingen/transcode/internal/lanes"
)

var version = 0x010200

// Version returns the version of the transcoding kernels.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version>>16&0xff, version>>8&0xff, version&0xff)
}

// Kernel returns the name of the implementation the package-level functions
// use, for example "lanes/archsimd" or "scalar".
func Kernel() string {
	e := Default().Engine()
	if e == EngineLanes {
		return e.String() + "/" + lanes.Accel
	}
	return e.String()
}
