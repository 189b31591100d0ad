package cfg

import (
	"vidfetch/internal/domain/consts"
	"vidfetch/internal/domain/keys"
	"vidfetch/internal/models"

	"github.com/spf13/viper"
)

// NewViper returns a viper instance holding the program defaults.
//
// Only the engine path and debug level read the environment. The download target,
// output template and cookie variable name stay fixed.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(keys.VideoURL, consts.DefaultVideoURL)
	v.SetDefault(keys.OutputTemplate, consts.DefaultOutputTemplate)
	v.SetDefault(keys.CookieEnvVar, consts.DefaultCookieEnvVar)
	v.SetDefault(keys.YTDLPPath, consts.DefaultYTDLPPath)
	v.SetDefault(keys.DebugLevel, 0)

	v.SetEnvPrefix(consts.EnvPrefix)
	_ = v.BindEnv(keys.YTDLPPath, consts.EnvPrefix+"_YTDLP_PATH")
	_ = v.BindEnv(keys.DebugLevel, consts.EnvPrefix+"_DEBUG_LEVEL")

	return v
}

// LoadSettings reads the run settings out of v.
func LoadSettings(v *viper.Viper) models.Settings {
	s := models.Settings{
		VideoURL:       v.GetString(keys.VideoURL),
		OutputTemplate: v.GetString(keys.OutputTemplate),
		CookieEnvVar:   v.GetString(keys.CookieEnvVar),
		YTDLPPath:      v.GetString(keys.YTDLPPath),
		DebugLevel:     v.GetInt(keys.DebugLevel),
	}
	if s.YTDLPPath == "" {
		s.YTDLPPath = consts.DefaultYTDLPPath
	}
	if s.DebugLevel < 0 {
		s.DebugLevel = 0
	}
	return s
}
