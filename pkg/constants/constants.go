/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package constants

// Application is the name of the application.
const Application = "aimall-commerce"

// Version is the release version, overridden at build time.
var Version = "0.0.0-dev"

// Revision is the VCS revision, overridden at build time.
var Revision = "unknown"
