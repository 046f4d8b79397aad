package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/api"
	"gitlab.com/ignitionrobotics/billing/paystack/pkg/fake"
	"net/http"
	"testing"
)

type cliTestSuite struct {
	suite.Suite
	Client *fake.Client
	Out    *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(cliTestSuite))
}

func (s *cliTestSuite) SetupTest() {
	s.Client = fake.NewClient()
	s.Out = &bytes.Buffer{}
}

func (s *cliTestSuite) execute(args ...string) error {
	root := NewRootCommand(func() (api.Paystack, error) {
		return s.Client, nil
	}, s.Out)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func (s *cliTestSuite) response(message string) api.Response {
	return api.Response{
		StatusCode:      http.StatusOK,
		Message:         message,
		ResponseFromAPI: map[string]interface{}{"status": true},
	}
}

func (s *cliTestSuite) TestInitialize() {
	s.Client.On("Initialize", mock.Anything, mock.MatchedBy(func(req api.InitializeRequest) bool {
		return req.Email == "customer@example.com" &&
			req.Amount == 5000 &&
			req.Params["currency"] == "NGN" &&
			req.Params["callback_url"] == "https://example.com/callback" &&
			len(req.Params["reference"].(string)) == 32
	})).Return(s.response("Transaction initialized successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	err := s.execute("initialize", "--email", "customer@example.com", "--amount", "5000",
		"--currency", "NGN", "--callback-url", "https://example.com/callback")
	s.Require().NoError(err)

	var out api.Response
	s.Require().NoError(json.Unmarshal(s.Out.Bytes(), &out))
	s.Assert().Equal(http.StatusOK, out.StatusCode)
	s.Assert().Equal("Transaction initialized successfully", out.Message)
	s.Assert().Equal(true, out.ResponseFromAPI["status"])
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestInitializeSubscriptionFlags() {
	s.Client.On("Initialize", mock.Anything, mock.MatchedBy(func(req api.InitializeRequest) bool {
		return req.Params["invoice_limit"] == 3 &&
			req.Params["transaction_charge"] == int64(1500) &&
			req.Params["plan"] == "PLN_gx2wn530m0i3w3m" &&
			req.Params["reference"] == "ref_1"
	})).Return(s.response("Transaction initialized successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	s.Require().NoError(s.execute("initialize", "--email", "customer@example.com", "--amount", "5000",
		"--plan", "PLN_gx2wn530m0i3w3m", "--invoice-limit", "3", "--transaction-charge", "1500", "--reference", "ref_1"))
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestInitializeInvalidMetadata() {
	err := s.execute("initialize", "--email", "customer@example.com", "--amount", "5000", "--metadata", "{")
	s.Assert().Error(err)
	s.Client.AssertNotCalled(s.T(), "Initialize", mock.Anything, mock.Anything)
}

func (s *cliTestSuite) TestVerifyFails() {
	s.Client.On("Verify", mock.Anything, "invalid_reference").
		Return(api.Response{}, api.NewError(http.StatusBadRequest, `{"status": false}`))
	s.Client.On("Close").Return(error(nil))

	err := s.execute("verify", "invalid_reference")
	s.Require().Error(err)
	s.Assert().Equal(2, ExitCode(err))
	s.Assert().Equal(`Paystack error (status 400): {"status": false}`, FormatError(err))
	s.Assert().Empty(s.Out.String())
	s.Client.AssertCalled(s.T(), "Close")
}

func (s *cliTestSuite) TestListOnlySendsChangedFlags() {
	s.Client.On("List", mock.Anything, api.Params{
		"status":     "success",
		"terminalid": "2232WE17",
	}).Return(s.response("Transactions retrieved successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	s.Require().NoError(s.execute("list", "--status", "success", "--terminal-id", "2232WE17"))
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestCharge() {
	s.Client.On("ChargeAuthorization", mock.Anything, api.ChargeAuthorizationRequest{
		Email:             "customer@example.com",
		Amount:            20,
		AuthorizationCode: "AUTH_72btv547",
		Params:            api.Params{"queue": true},
	}).Return(s.response("Transaction charged successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	s.Require().NoError(s.execute("charge", "--email", "customer@example.com", "--amount", "20",
		"--authorization-code", "AUTH_72btv547", "--queue"))
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestChargeTransactionCharge() {
	s.Client.On("ChargeAuthorization", mock.Anything, api.ChargeAuthorizationRequest{
		Email:             "customer@example.com",
		Amount:            20,
		AuthorizationCode: "AUTH_72btv547",
		Params:            api.Params{"transaction_charge": int64(200), "subaccount": "ACCT_x"},
	}).Return(s.response("Transaction charged successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	s.Require().NoError(s.execute("charge", "--email", "customer@example.com", "--amount", "20",
		"--authorization-code", "AUTH_72btv547", "--subaccount", "ACCT_x", "--transaction-charge", "200"))
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestTotals() {
	s.Client.On("Totals", mock.Anything, api.Params{
		"page":      2,
		"from_date": "2023-01-01",
	}).Return(s.response("Transaction totals retrieved successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	s.Require().NoError(s.execute("totals", "--page", "2", "--from", "2023-01-01"))
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestExport() {
	s.Client.On("Export", mock.Anything, api.ExportRequest{
		Destination: "/tmp/out.csv",
		Params:      api.Params{"settled": true},
	}).Return(s.response("Transactions exported successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	s.Require().NoError(s.execute("export", "-o", "/tmp/out.csv", "--settled"))
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestCreateSplit() {
	s.Client.On("CreateSplit", mock.Anything, api.CreateSplitRequest{
		Name:     "Test Split",
		Type:     api.SplitTypePercentage,
		Currency: "NGN",
		Subaccounts: []api.SplitSubaccount{
			{Subaccount: "ACCT_j1ibmm5vpj5ior7", Share: 20},
			{Subaccount: "ACCT_x", Share: 30},
		},
		BearerType:       "subaccount",
		BearerSubaccount: "ACCT_j1ibmm5vpj5ior7",
	}).Return(s.response("Transaction split created successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	s.Require().NoError(s.execute("split", "create", "--name", "Test Split", "--currency", "NGN",
		"--subaccount", "ACCT_j1ibmm5vpj5ior7:20", "--subaccount", "ACCT_x:30",
		"--bearer-type", "subaccount", "--bearer-subaccount", "ACCT_j1ibmm5vpj5ior7"))
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestCreateSplitInvalidSubaccount() {
	err := s.execute("split", "create", "--name", "Test Split", "--subaccount", "ACCT_x")
	s.Assert().Error(err)
	s.Assert().Equal(1, ExitCode(err))
}

func (s *cliTestSuite) TestFetchSplit() {
	s.Client.On("FetchSplit", mock.Anything, "143").Return(s.response("Transaction split retrieved successfully"), error(nil))
	s.Client.On("Close").Return(error(nil))

	s.Require().NoError(s.execute("split", "fetch", "143"))
	s.Client.AssertExpectations(s.T())
}

func (s *cliTestSuite) TestFactoryFails() {
	root := NewRootCommand(func() (api.Paystack, error) {
		return nil, errors.New("required environment variable \"PAYSTACK_KEY\" is not set")
	}, s.Out)
	root.SetArgs([]string{"fetch", "1"})
	root.SetErr(&bytes.Buffer{})

	err := root.ExecuteContext(context.Background())
	s.Require().Error(err)
	s.Assert().Equal(1, ExitCode(err))
}

func (s *cliTestSuite) TestExitCode() {
	s.Assert().Equal(0, ExitCode(nil))
	s.Assert().Equal(2, ExitCode(api.ErrInvalidAPIKey))
	s.Assert().Equal(1, ExitCode(api.ErrClientClosed))
	s.Assert().Equal(1, ExitCode(errors.New("boom")))
}
