// Package api implements the agricultural assistant's JSON HTTP API.
//
// The server exposes read endpoints for location, weather, soil and mandi
// prices, and advice endpoints that run through the advisor: chat, crop
// recommendation, market analysis and disease detection. Handlers sit
// behind a middleware stack of recovery, request logging, CORS and
// per-IP rate limiting; the health probe bypasses the stack.
package api
