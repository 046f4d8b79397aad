package conf

import (
	"github.com/caarlos0/env/v6"
	"github.com/xhit/go-str2duration/v2"
	"reflect"
	"time"
)

// Paystack contains the needed config to interact with the Paystack API.
type Paystack struct {
	// SecretKey is the secret key used as bearer token when calling the Paystack API.
	SecretKey string `env:"PAYSTACK_KEY,required"`

	// URL is the Paystack API url. It's overridden when testing against a fake server.
	URL string `env:"PAYSTACK_URL" envDefault:"https://api.paystack.co"`

	// Timeout is the amount of time a request to Paystack waits until it fails.
	//	Accepts day units as well, e.g. 1d2h.
	Timeout time.Duration `env:"PAYSTACK_TIMEOUT" envDefault:"30s"`
}

// Parse fills Paystack data from an external source.
func (c *Paystack) Parse() error {
	return env.ParseWithFuncs(c, parsers)
}

// Config contains the needed config to run the Paystack command line tool.
type Config struct {
	// Paystack contains configuration for the Paystack client.
	Paystack Paystack

	// Verbose enables request logging to stderr.
	Verbose bool `env:"PAYSTACK_VERBOSE" envDefault:"false"`
}

// Parse fills Config data from an external source. Nested structs such as Paystack are filled as well.
func (c *Config) Parse() error {
	return env.ParseWithFuncs(c, parsers)
}

var parsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(time.Duration(0)): func(v string) (interface{}, error) {
		return str2duration.ParseDuration(v)
	},
}
