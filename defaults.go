/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sz

// DefaultBlockSize returns the default block size B for an array of n
// dimensions, used whenever the caller passes B == 0: 128 for 1-D, 16
// for 2-D, 6 for 3-D and above.
func DefaultBlockSize(n int) int {
	switch n {
	case 1:
		return 128
	case 2:
		return 16
	default:
		return 6
	}
}
