package report

// Schema is the JSON Schema (Draft 2020-12) for the labkit run JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/labkit/run-report.schema.json",
  "title": "labkit Run Report",
  "description": "Output schema for labkit run --format=json",
  "type": "object",
  "required": ["version", "labs"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Report format version (semver)"
    },
    "labs": {
      "type": "array",
      "items": { "$ref": "#/$defs/LabReport" }
    }
  },
  "$defs": {
    "LabReport": {
      "type": "object",
      "required": ["lab", "title", "sections"],
      "properties": {
        "lab": {
          "type": "string",
          "description": "Registry name of the lab"
        },
        "title": {
          "type": "string",
          "description": "Banner printed above the lab output"
        },
        "sections": {
          "type": "array",
          "items": { "$ref": "#/$defs/Section" }
        }
      }
    },
    "Section": {
      "type": "object",
      "required": ["heading"],
      "properties": {
        "heading": { "type": "string" },
        "columns": {
          "type": "array",
          "items": { "type": "string" }
        },
        "rows": {
          "type": "array",
          "items": {
            "type": "array",
            "items": { "type": "string" }
          }
        },
        "lines": {
          "type": "array",
          "items": { "type": "string" }
        }
      }
    }
  }
}`
