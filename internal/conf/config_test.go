package conf

import (
	"github.com/stretchr/testify/suite"
	"os"
	"testing"
	"time"
)

type configTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(configTestSuite))
}

func (s *configTestSuite) TearDownTest() {
	for _, key := range []string{"PAYSTACK_KEY", "PAYSTACK_URL", "PAYSTACK_TIMEOUT", "PAYSTACK_VERBOSE"} {
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *configTestSuite) TestSucceed() {
	s.Require().NoError(os.Setenv("PAYSTACK_KEY", "sk_test_1234"))
	s.Require().NoError(os.Setenv("PAYSTACK_URL", "http://localhost:3000"))
	s.Require().NoError(os.Setenv("PAYSTACK_TIMEOUT", "10s"))
	s.Require().NoError(os.Setenv("PAYSTACK_VERBOSE", "true"))

	var cfg Config
	s.Require().NoError(cfg.Parse())

	s.Assert().Equal("sk_test_1234", cfg.Paystack.SecretKey)
	s.Assert().Equal("http://localhost:3000", cfg.Paystack.URL)
	s.Assert().Equal(10*time.Second, cfg.Paystack.Timeout)
	s.Assert().True(cfg.Verbose)
}

func (s *configTestSuite) TestDefaultValues() {
	s.Require().NoError(os.Setenv("PAYSTACK_KEY", "sk_test_1234"))

	var cfg Config
	s.Require().NoError(cfg.Parse())

	s.Assert().Equal("https://api.paystack.co", cfg.Paystack.URL)
	s.Assert().Equal(30*time.Second, cfg.Paystack.Timeout)
	s.Assert().False(cfg.Verbose)
}

func (s *configTestSuite) TestDayDuration() {
	s.Require().NoError(os.Setenv("PAYSTACK_KEY", "sk_test_1234"))
	s.Require().NoError(os.Setenv("PAYSTACK_TIMEOUT", "1d2h"))

	var cfg Paystack
	s.Require().NoError(cfg.Parse())
	s.Assert().Equal(26*time.Hour, cfg.Timeout)
}

func (s *configTestSuite) TestNestedDayDuration() {
	s.Require().NoError(os.Setenv("PAYSTACK_KEY", "sk_test_1234"))
	s.Require().NoError(os.Setenv("PAYSTACK_TIMEOUT", "1d"))

	var cfg Config
	s.Require().NoError(cfg.Parse())
	s.Assert().Equal("sk_test_1234", cfg.Paystack.SecretKey)
	s.Assert().Equal(24*time.Hour, cfg.Paystack.Timeout)
}

func (s *configTestSuite) TestMissingEnvVars() {
	var cfg Config
	s.Assert().Error(cfg.Parse())
}

func (s *configTestSuite) TestInvalidTimeout() {
	s.Require().NoError(os.Setenv("PAYSTACK_KEY", "sk_test_1234"))
	s.Require().NoError(os.Setenv("PAYSTACK_TIMEOUT", "ABCD"))

	var cfg Config
	s.Assert().Error(cfg.Parse())
}
