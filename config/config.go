// Package config binds the application configuration from a file.
package config

import (
	"context"
	"flag"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/ti/docstore/log"
	"github.com/ti/objectbind"
)

// DefaultURI the config file used when nothing else is given.
const DefaultURI = "configs/config.yaml"

// Init binds configPtr from configURI, e.g. ./configs/config.yaml. When
// configURI is empty it is taken from CONFIG_PATH, then from the -c flag.
// A Log.Level field, if the config has one, is applied and kept in sync.
func Init(ctx context.Context, configURI string, configPtr any) error {
	if configURI == "" {
		configURI = URIFromEnv()
	}
	var cc context.CancelFunc
	if _, ok := ctx.Deadline(); !ok {
		ctx, cc = context.WithTimeout(ctx, 5*time.Second)
		defer cc()
	}
	var err error
	binder, err = objectbind.Bind(ctx, configPtr, configURI)
	if err != nil {
		return fmt.Errorf("error for start config for %s is %w", configURI, err)
	}
	if level, ok := logLevel(configPtr); ok {
		if level != "" {
			if err = log.SetLevel(level); err != nil {
				return err
			}
		}
		binder.BindField("Log.Level", func(value, _ any) {
			if s, ok := value.(string); ok {
				if err := log.SetLevel(s); err != nil {
					log.Action("config").Warn(err.Error())
				}
			}
		})
	}
	return nil
}

// URIFromEnv returns CONFIG_PATH, else the -c flag, else DefaultURI.
func URIFromEnv() string {
	if uri := os.Getenv("CONFIG_PATH"); uri != "" {
		return uri
	}
	if f := flag.Lookup("c"); f != nil {
		return f.Value.String()
	}
	configURIAddr := flag.String("c", DefaultURI, "uri to load config")
	if !flag.Parsed() {
		flag.Parse()
	}
	return *configURIAddr
}

// logLevel reads configPtr.Log.Level when the config carries one.
func logLevel(configPtr any) (string, bool) {
	v := reflect.Indirect(reflect.ValueOf(configPtr))
	if v.Kind() != reflect.Struct {
		return "", false
	}
	logField := reflect.Indirect(v.FieldByName("Log"))
	if !logField.IsValid() || logField.Kind() != reflect.Struct {
		return "", false
	}
	level := logField.FieldByName("Level")
	if !level.IsValid() || level.Kind() != reflect.String {
		return "", false
	}
	return level.String(), true
}

var binder *objectbind.Binder

// Binder get the binder for add the hook for some config field.
func Binder() *objectbind.Binder {
	if binder == nil {
		panic("the config may not init")
	}
	return binder
}
