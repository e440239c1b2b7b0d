package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kpfaulkner/ocio-go/catalog"
	"github.com/kpfaulkner/ocio-go/config"
	"github.com/kpfaulkner/ocio-go/image"
	"github.com/kpfaulkner/ocio-go/transform"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("c", "", "config file (defaults to $OCIO)")
	classify := flag.Bool("classify", false, "classify each colorspace as scene linear / sRGB")
	bench := flag.Bool("bench", false, "time a display transform over a synthetic buffer")
	display := flag.String("display", "", "display for -bench (defaults to the default display)")
	view := flag.String("view", "", "view for -bench (defaults to the default view)")
	inputSpace := flag.String("input", config.RoleSceneLinear, "input space for -bench")
	exposure := flag.Float64("exposure", 1.0, "exposure scale for -bench")
	gamma := flag.Float64("gamma", 1.0, "gamma exponent for -bench")
	profiling := flag.Bool("profile", false, "write a CPU profile")
	flag.Parse()

	if *profiling {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.CreateFromFile(*configPath)
	} else {
		cfg, err = config.CreateFromEnv()
	}
	if err != nil {
		log.Errorf("Error loading config: %v", err)
		os.Exit(1)
	}

	cat := catalog.NewCatalog(cfg)

	fmt.Printf("colorspaces: %d\n", cat.NumColorSpaces())
	for i := 0; i < cat.NumColorSpaces(); i++ {
		name, _ := cat.ColorSpaceNameByIndex(i)
		cs := cat.ColorSpace(name)
		fmt.Printf("  %-24s family=%-10s invertible=%v data=%v\n",
			name, cs.Family, cat.IsInvertible(cs), cs.IsData)
		if *classify {
			linear, srgb := catalog.IsBuiltinColorSpace(cfg, cs)
			fmt.Printf("    scene_linear=%v srgb=%v\n", linear, srgb)
		}
	}

	fmt.Printf("default display: %s\n", cat.DefaultDisplay())
	for i := 0; i < cat.NumDisplays(); i++ {
		d := cat.DisplayByIndex(i)
		fmt.Printf("  display %-16s default view: %s\n", d, cat.DefaultView(d))
		for j := 0; j < cat.NumViews(d); j++ {
			v := cat.ViewByIndex(d, j)
			fmt.Printf("    view %-16s -> %s\n", v, cat.DisplayColorSpaceName(d, v))
		}
	}

	luma := cat.DefaultLumaCoefs()
	fmt.Printf("luma coefficients: %v\n", luma)

	if *bench {
		runBench(cfg, cat, *inputSpace, *display, *view, float32(*exposure), float32(*gamma))
	}
}

func runBench(cfg *config.Config, cat *catalog.Catalog, input string, display string,
	view string, exposure float32, gamma float32) {

	if display == "" {
		display = cat.DefaultDisplay()
	}
	if view == "" {
		view = cat.DefaultView(display)
	}

	proc, err := transform.CreateDisplayProcessor(cfg, input, view, display, "", exposure, gamma)
	if err != nil {
		log.Errorf("Error building display processor: %v", err)
		return
	}
	cpu := proc.DefaultCPUProcessor()

	const width, height = 1920, 1080
	data := make([]float32, width*height*4)
	for i := range data {
		data[i] = float32(i%1024) / 1024.0
	}
	img, err := image.NewPackedImage(data, width, height, 4,
		image.AutoStride, image.AutoStride, image.AutoStride)
	if err != nil {
		log.Errorf("Error building image: %v", err)
		return
	}

	start := time.Now()
	if err := cpu.ApplyPredivide(img); err != nil {
		log.Errorf("Error applying transform: %v", err)
		return
	}
	fmt.Printf("applied %s/%s to %dx%d in %d ms\n",
		display, view, width, height, time.Since(start).Milliseconds())
}
