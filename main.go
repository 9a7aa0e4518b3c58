package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "fieldlines",
	Short: "fieldlines — interactive electric field line visualizer",
	Long: `fieldlines traces the electric field lines of a set of point charges.
Left click places a positive charge, right click a negative one; press a
charge body and move to drag it. Keys: C clear, A field arrows, D drift
mode, S/L save/load the charge set.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file with engine tunables (json/yaml)")
	rootCmd.Flags().Float64("width", 1000, "canvas width in field units")
	rootCmd.Flags().Float64("height", 600, "canvas height in field units")
	rootCmd.Flags().Int("density", 24, "field lines seeded per charge")
	rootCmd.Flags().String("scenario", "scenario.json", "charge set file used by the S/L keys")

	// Flags override the config file, which overrides the defaults.
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("height", rootCmd.Flags().Lookup("height"))
	_ = viper.BindPFlag("density", rootCmd.Flags().Lookup("density"))
	_ = viper.BindPFlag("scenario", rootCmd.Flags().Lookup("scenario"))
}

// loadParams merges the stock tunables with the optional config file and any
// bound flags.
func loadParams() (Params, error) {
	p := DefaultParams()
	viper.SetDefault("k", p.K)
	viper.SetDefault("exclusionRadius", p.ExclusionRadius)
	viper.SetDefault("chargeRadius", p.ChargeRadius)
	viper.SetDefault("catchAllRadius", p.CatchAllRadius)
	viper.SetDefault("stepSize", p.StepSize)
	viper.SetDefault("minStep", p.MinStep)
	viper.SetDefault("minFieldMag", p.MinFieldMag)
	viper.SetDefault("maxSteps", p.MaxSteps)
	viper.SetDefault("minLinePoints", p.MinLinePoints)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return p, fmt.Errorf("load config: %w", err)
		}
		log.Printf("using config file %s", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&p); err != nil {
		return p, fmt.Errorf("unmarshal config: %w", err)
	}
	return p, nil
}

func run(cmd *cobra.Command, args []string) error {
	params, err := loadParams()
	if err != nil {
		return err
	}

	width := viper.GetFloat64("width")
	height := viper.GetFloat64("height")

	engine := NewEngine(width, height, params)
	app := NewApp(engine, viper.GetString("scenario"))

	ebiten.SetWindowSize(int(width), int(height))
	ebiten.SetWindowTitle("Field Lines")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
