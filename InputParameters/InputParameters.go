package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title          string    `yaml:"Title"`
	Uinf           float64   `yaml:"Uinf"`
	Alpha          float64   `yaml:"Alpha"` // degrees
	MainFile       string    `yaml:"MainFile"`
	FlapFile       string    `yaml:"FlapFile"`
	HingeX         float64   `yaml:"HingeX"`
	HingeY         float64   `yaml:"HingeY"`
	Deflections    []float64 `yaml:"Deflections"` // degrees, flap-down positive
	ConditionLimit float64   `yaml:"ConditionLimit"`
}

func (cp *CaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%8.5f\t\t= Uinf\n", cp.Uinf)
	fmt.Printf("%8.5f\t\t= Alpha (deg)\n", cp.Alpha)
	fmt.Printf("[%s]\t\t= MainFile\n", cp.MainFile)
	fmt.Printf("[%s]\t\t= FlapFile\n", cp.FlapFile)
	fmt.Printf("(%8.5f, %8.5f)\t= Hinge\n", cp.HingeX, cp.HingeY)
	fmt.Printf("%v\t= Deflections (deg)\n", cp.Deflections)
}

func (cp *CaseParameters) Validate() (err error) {
	if cp.Uinf <= 0 {
		return fmt.Errorf("Uinf must be positive, have %g", cp.Uinf)
	}
	if len(cp.MainFile) == 0 {
		return fmt.Errorf("must supply a main element coordinate file (MainFile)")
	}
	return
}
