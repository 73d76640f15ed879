// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/absmach/errcheck/faults"
	"github.com/absmach/errcheck/internal/apiutil"
	"github.com/absmach/errcheck/pkg/errors"
)

func statusEndpoint(svc faults.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		status, err := svc.Status(ctx)
		if err != nil {
			return nil, err
		}

		return statusRes{Status: status}, nil
	}
}

func armEndpoint(svc faults.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(armReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		status, err := svc.Arm(ctx, req.Code)
		if err != nil {
			return nil, err
		}

		return statusRes{Status: status}, nil
	}
}

func disarmEndpoint(svc faults.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		status, err := svc.Disarm(ctx)
		if err != nil {
			return nil, err
		}

		return statusRes{Status: status}, nil
	}
}

func listCodesEndpoint(svc faults.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		infos, err := svc.Codes(ctx)
		if err != nil {
			return nil, err
		}

		return codesRes{Codes: infos}, nil
	}
}

func resetEndpoint(svc faults.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		status, err := svc.Reset(ctx)
		if err != nil {
			return nil, err
		}

		return statusRes{Status: status}, nil
	}
}
