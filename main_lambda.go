//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/filipondios/kotcalc/internal/calculator"
	"github.com/filipondios/kotcalc/internal/errors"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type calcRequest struct {
	calculator.Input
	Lang string `json:"lang"`
}

type lambdaHandler struct {
	app *app
	log *slog.Logger
}

func (h *lambdaHandler) handle(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(errors.InvalidArgument("invalid base64 body"))
		}
		body = string(decoded)
	}

	var req calcRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(errors.InvalidArgumentf("invalid JSON: %v", err))
	}

	out, err := h.app.evaluate(req.Input, req.Lang, h.log)
	if err != nil {
		h.log.Debug("request rejected", "error", err)
		return errResp(err)
	}

	respJSON, err := json.Marshal(out)
	if err != nil {
		return errResp(errors.Wrap(err, "encoding response"))
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(err error) (events.LambdaFunctionURLResponse, error) {
	code := errors.GetCode(err)
	body, _ := json.Marshal(map[string]string{"error": err.Error(), "code": code.String()})
	return events.LambdaFunctionURLResponse{StatusCode: code.HTTPStatus(), Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	log := newLogger(os.Stderr, os.Getenv("KOTCALC_VERBOSE") != "")

	a, err := loadApp(configPath(""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	h := &lambdaHandler{app: a, log: log}
	lambda.Start(h.handle)
}
