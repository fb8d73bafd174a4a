// This file is part of PiGUS.
//
// PiGUS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PiGUS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PiGUS.  If not, see <https://www.gnu.org/licenses/>.

package notifications

// Notice describes events that are of interest outside the bus core.
type Notice string

// List of defined notifications.
const (
	// the host has written to one of the card's ports since the previous
	// notice
	NotifyActivity Notice = "NotifyActivity"

	// no port activity since the previous notice
	NotifyIdle Notice = "NotifyIdle"

	// the preferences file has been reloaded
	NotifyPrefsReloaded Notice = "NotifyPrefsReloaded"

	// the card is shutting down
	NotifyShutdown Notice = "NotifyShutdown"
)

// Notify is implemented by anything that presents card events to the user.
// Notify() is always called from the bookkeeping core.
type Notify interface {
	Notify(notice Notice) error
}

// Multi forwards notices to more than one Notify implementation. The first
// error ends the forwarding.
type Multi []Notify

// Notify implements the Notify interface.
func (m Multi) Notify(notice Notice) error {
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(notice); err != nil {
			return err
		}
	}
	return nil
}
