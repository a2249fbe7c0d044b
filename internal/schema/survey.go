package schema

// SurveySchema constrains survey ingest payloads before they reach the
// application layer: integer chunk coordinates, numeric tag positions,
// optional popup text.
const SurveySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["chunks"],
  "properties": {
    "chunks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["x", "y"],
        "properties": {
          "x": {"type": "integer"},
          "y": {"type": "integer"},
          "seed": {"type": "boolean"}
        },
        "additionalProperties": false
      }
    },
    "tags": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["position"],
          "properties": {
            "position": {
              "type": "object",
              "required": ["x", "y"],
              "properties": {
                "x": {"type": "number"},
                "y": {"type": "number"}
              },
              "additionalProperties": false
            },
            "text": {"type": "string"}
          },
          "additionalProperties": false
        }
      }
    }
  },
  "additionalProperties": false
}`
